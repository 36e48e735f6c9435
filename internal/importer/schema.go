package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a snapshot file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported snapshot file extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseFormat accepts the user-facing names of a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or yaml)", s)
	}
}

// Amount is a money value in a snapshot file. YAML output writes it in
// plain decimal notation instead of the encoder's exponent form.
type Amount float64

func (a Amount) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: strconv.FormatFloat(float64(a), 'f', -1, 64),
	}, nil
}

// SnapshotSchema is the top-level structure of a portfolio snapshot file.
type SnapshotSchema struct {
	ProductManagers []ProductManagerImport `json:"product_managers" yaml:"product_managers"`
	ValueStreams    []ValueStreamImport    `json:"value_streams" yaml:"value_streams"`
}

type ProductManagerImport struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ValueStreamImport defines a value stream and its products. Totals are
// optional; when omitted they are summed from the products on conversion.
type ValueStreamImport struct {
	ID               string          `json:"id,omitempty" yaml:"id,omitempty"`
	Name             string          `json:"name" yaml:"name"`
	Description      string          `json:"description,omitempty" yaml:"description,omitempty"`
	ProductManagerID string          `json:"product_manager_id,omitempty" yaml:"product_manager_id,omitempty"`
	TotalBenefit     *Amount         `json:"total_benefit,omitempty" yaml:"total_benefit,omitempty"`
	TotalCloudCosts  *Amount         `json:"total_cloud_costs,omitempty" yaml:"total_cloud_costs,omitempty"`
	Products         []ProductImport `json:"products" yaml:"products"`
}

type ProductImport struct {
	ID               string              `json:"id,omitempty" yaml:"id,omitempty"`
	Name             string              `json:"name" yaml:"name"`
	Description      string              `json:"description,omitempty" yaml:"description,omitempty"`
	Horizon          string              `json:"horizon" yaml:"horizon"`
	EstimatedBenefit Amount              `json:"estimated_benefit" yaml:"estimated_benefit"`
	CloudCosts       Amount              `json:"cloud_costs" yaml:"cloud_costs"`
	ValueStreamID    string              `json:"value_stream_id,omitempty" yaml:"value_stream_id,omitempty"`
	Milestones       []MilestoneImport   `json:"milestones,omitempty" yaml:"milestones,omitempty"`
	Risks            []RiskImport        `json:"risks,omitempty" yaml:"risks,omitempty"`
	Stakeholders     []StakeholderImport `json:"stakeholders,omitempty" yaml:"stakeholders,omitempty"`
}

type MilestoneImport struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Status      string `json:"status" yaml:"status"`
	Owner       string `json:"owner,omitempty" yaml:"owner,omitempty"`
}

type RiskImport struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Severity    string `json:"severity" yaml:"severity"`
	Probability string `json:"probability" yaml:"probability"`
	Mitigation  string `json:"mitigation,omitempty" yaml:"mitigation,omitempty"`
	Owner       string `json:"owner,omitempty" yaml:"owner,omitempty"`
}

type StakeholderImport struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	RACIRole string `json:"raci_role" yaml:"raci_role"`
}

// LoadSnapshotSchema reads and parses a snapshot file. The encoding is chosen
// from the file extension.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshotSchema(data, format)
}

// ParseSnapshotSchema decodes data in the given format.
func ParseSnapshotSchema(data []byte, format Format) (*SnapshotSchema, error) {
	var schema SnapshotSchema
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing snapshot json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing snapshot yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}
	return &schema, nil
}

// Encode serialises schema in the given format.
func Encode(schema *SnapshotSchema, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(schema, "", "  ")
	case FormatYAML:
		return yaml.Marshal(schema)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}
}
