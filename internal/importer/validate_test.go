package importer

import (
	"strings"
	"testing"

	"github.com/alexanderramin/horizon/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *Amount { a := Amount(f); return &a }

func validMinimalSchema() *SnapshotSchema {
	return &SnapshotSchema{
		ProductManagers: []ProductManagerImport{
			{ID: "pm1", Name: "Sarah Johnson"},
		},
		ValueStreams: []ValueStreamImport{
			{
				ID:               "vs1",
				Name:             "Efficiency Value Stream",
				ProductManagerID: "pm1",
				Products: []ProductImport{
					{ID: "p1", Name: "Cost Optimization Platform", Horizon: "Investing", EstimatedBenefit: 100, CloudCosts: 10},
				},
			},
		},
	}
}

func errorsContain(errs []error, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Error(), substr) {
			return true
		}
	}
	return false
}

func TestValidateSnapshotSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateSnapshotSchema(validMinimalSchema()))
}

func TestValidateSnapshotSchema_FixtureIsValid(t *testing.T) {
	assert.Empty(t, ValidateSnapshotSchema(FromSnapshot(fixture.Snapshot())))
}

func TestValidateSnapshotSchema_Empty(t *testing.T) {
	assert.Empty(t, ValidateSnapshotSchema(&SnapshotSchema{}))
}

func TestValidateSnapshotSchema_MissingNames(t *testing.T) {
	s := validMinimalSchema()
	s.ProductManagers[0].Name = ""
	s.ValueStreams[0].Name = ""
	s.ValueStreams[0].Products[0].Name = ""

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 3)
	assert.True(t, errorsContain(errs, "product_managers[0].name is required"))
	assert.True(t, errorsContain(errs, "value_streams[0].name is required"))
	assert.True(t, errorsContain(errs, "value_streams[0].products[0].name is required"))
}

func TestValidateSnapshotSchema_DuplicateIDs(t *testing.T) {
	s := validMinimalSchema()
	s.ProductManagers = append(s.ProductManagers, ProductManagerImport{ID: "pm1", Name: "Clone"})
	s.ValueStreams = append(s.ValueStreams, ValueStreamImport{
		ID:   "vs1",
		Name: "Again",
		Products: []ProductImport{
			{ID: "p1", Name: "Copy", Horizon: "Idea"},
		},
	})

	errs := ValidateSnapshotSchema(s)
	assert.True(t, errorsContain(errs, `product_managers[1].id: duplicate id "pm1"`))
	assert.True(t, errorsContain(errs, `value_streams[1].id: duplicate id "vs1"`))
	assert.True(t, errorsContain(errs, `value_streams[1].products[0].id: duplicate id "p1"`))
}

func TestValidateSnapshotSchema_UnknownManager(t *testing.T) {
	s := validMinimalSchema()
	s.ValueStreams[0].ProductManagerID = "pm9"

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `unknown product manager "pm9"`)
}

func TestValidateSnapshotSchema_UnassignedStreamAllowed(t *testing.T) {
	s := validMinimalSchema()
	s.ValueStreams[0].ProductManagerID = ""
	assert.Empty(t, ValidateSnapshotSchema(s))
}

func TestValidateSnapshotSchema_InvalidEnums(t *testing.T) {
	s := validMinimalSchema()
	p := &s.ValueStreams[0].Products[0]
	p.Horizon = "Sunset"
	p.Milestones = []MilestoneImport{{Title: "m", Status: "Done"}}
	p.Risks = []RiskImport{{Title: "r", Severity: "Severe", Probability: "Certain"}}
	p.Stakeholders = []StakeholderImport{{Name: "s", RACIRole: "Owner"}}

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 5)
	assert.True(t, errorsContain(errs, `horizon: invalid value "Sunset"`))
	assert.True(t, errorsContain(errs, `milestones[0].status: invalid value "Done"`))
	assert.True(t, errorsContain(errs, `risks[0].severity: invalid value "Severe"`))
	assert.True(t, errorsContain(errs, `risks[0].probability: invalid value "Certain"`))
	assert.True(t, errorsContain(errs, `stakeholders[0].raci_role: invalid value "Owner"`))
}

func TestValidateSnapshotSchema_NegativeAmounts(t *testing.T) {
	s := validMinimalSchema()
	s.ValueStreams[0].TotalBenefit = ptrFloat(-1)
	s.ValueStreams[0].TotalCloudCosts = ptrFloat(-1)
	s.ValueStreams[0].Products[0].EstimatedBenefit = -5
	s.ValueStreams[0].Products[0].CloudCosts = -5

	errs := ValidateSnapshotSchema(s)
	assert.Len(t, errs, 4)
}

func TestValidateSnapshotSchema_InvalidDueDate(t *testing.T) {
	s := validMinimalSchema()
	s.ValueStreams[0].Products[0].Milestones = []MilestoneImport{
		{Title: "ok", Status: "Completed", DueDate: "2024-06-30"},
		{Title: "bad", Status: "Completed", DueDate: "30/06/2024"},
		{Title: "none", Status: "Not Started"},
	}

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "milestones[1].due_date")
}

func TestValidateSnapshotSchema_StreamReferenceMismatch(t *testing.T) {
	s := validMinimalSchema()
	s.ValueStreams[0].Products[0].ValueStreamID = "vs2"

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `does not match enclosing value stream "vs1"`)
}
