package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// ValidateSnapshotSchema checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	managerIDs := make(map[string]bool)
	errs = append(errs, validateManagers(schema.ProductManagers, managerIDs)...)

	streamIDs := make(map[string]bool)
	productIDs := make(map[string]bool)
	for i := range schema.ValueStreams {
		errs = append(errs, validateValueStream(i, &schema.ValueStreams[i], managerIDs, streamIDs, productIDs)...)
	}

	return errs
}

func validateManagers(managers []ProductManagerImport, ids map[string]bool) []error {
	var errs []error
	for i, pm := range managers {
		path := fmt.Sprintf("product_managers[%d]", i)
		if pm.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", path))
		}
		if pm.ID == "" {
			continue
		}
		if ids[pm.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", path, pm.ID))
		}
		ids[pm.ID] = true
	}
	return errs
}

func validateValueStream(i int, vs *ValueStreamImport, managerIDs, streamIDs, productIDs map[string]bool) []error {
	var errs []error
	path := fmt.Sprintf("value_streams[%d]", i)

	if vs.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", path))
	}
	if vs.ID != "" {
		if streamIDs[vs.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", path, vs.ID))
		}
		streamIDs[vs.ID] = true
	}
	if vs.ProductManagerID != "" && !managerIDs[vs.ProductManagerID] {
		errs = append(errs, fmt.Errorf("%s.product_manager_id: unknown product manager %q", path, vs.ProductManagerID))
	}
	if vs.TotalBenefit != nil && *vs.TotalBenefit < 0 {
		errs = append(errs, fmt.Errorf("%s.total_benefit must be >= 0, got %v", path, *vs.TotalBenefit))
	}
	if vs.TotalCloudCosts != nil && *vs.TotalCloudCosts < 0 {
		errs = append(errs, fmt.Errorf("%s.total_cloud_costs must be >= 0, got %v", path, *vs.TotalCloudCosts))
	}

	for j := range vs.Products {
		errs = append(errs, validateProduct(fmt.Sprintf("%s.products[%d]", path, j), &vs.Products[j], vs.ID, productIDs)...)
	}
	return errs
}

func validateProduct(path string, p *ProductImport, streamID string, productIDs map[string]bool) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", path))
	}
	if p.ID != "" {
		if productIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", path, p.ID))
		}
		productIDs[p.ID] = true
	}
	if !domain.Horizon(p.Horizon).Valid() {
		errs = append(errs, fmt.Errorf("%s.horizon: invalid value %q", path, p.Horizon))
	}
	if p.EstimatedBenefit < 0 {
		errs = append(errs, fmt.Errorf("%s.estimated_benefit must be >= 0, got %v", path, p.EstimatedBenefit))
	}
	if p.CloudCosts < 0 {
		errs = append(errs, fmt.Errorf("%s.cloud_costs must be >= 0, got %v", path, p.CloudCosts))
	}
	if p.ValueStreamID != "" && streamID != "" && p.ValueStreamID != streamID {
		errs = append(errs, fmt.Errorf("%s.value_stream_id %q does not match enclosing value stream %q", path, p.ValueStreamID, streamID))
	}

	for k, m := range p.Milestones {
		mpath := fmt.Sprintf("%s.milestones[%d]", path, k)
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", mpath))
		}
		if !domain.MilestoneStatus(m.Status).Valid() {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", mpath, m.Status))
		}
		if m.DueDate != "" {
			if _, err := time.Parse("2006-01-02", m.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.due_date: invalid date format %q (expected YYYY-MM-DD)", mpath, m.DueDate))
			}
		}
	}
	for k, r := range p.Risks {
		rpath := fmt.Sprintf("%s.risks[%d]", path, k)
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", rpath))
		}
		if !domain.Severity(r.Severity).Valid() {
			errs = append(errs, fmt.Errorf("%s.severity: invalid value %q", rpath, r.Severity))
		}
		if !domain.Probability(r.Probability).Valid() {
			errs = append(errs, fmt.Errorf("%s.probability: invalid value %q", rpath, r.Probability))
		}
	}
	for k, s := range p.Stakeholders {
		spath := fmt.Sprintf("%s.stakeholders[%d]", path, k)
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", spath))
		}
		if !domain.RACIRole(s.RACIRole).Valid() {
			errs = append(errs, fmt.Errorf("%s.raci_role: invalid value %q", spath, s.RACIRole))
		}
	}
	return errs
}
