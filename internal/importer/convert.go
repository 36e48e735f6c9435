package importer

import (
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/portfolio"
	"github.com/google/uuid"
)

// Convert transforms a validated SnapshotSchema into a domain snapshot.
// Call ValidateSnapshotSchema first; Convert assumes the schema is valid.
// Entities without an id get a fresh UUID, products without a
// value_stream_id inherit their enclosing stream's id, and streams without
// stored totals get the sum of their products.
func Convert(schema *SnapshotSchema, source string) *domain.Snapshot {
	snap := &domain.Snapshot{
		Managers:     make([]domain.ProductManager, 0, len(schema.ProductManagers)),
		ValueStreams: make([]domain.ValueStream, 0, len(schema.ValueStreams)),
		Source:       source,
		LoadedAt:     time.Now().UTC(),
	}

	for _, pm := range schema.ProductManagers {
		snap.Managers = append(snap.Managers, domain.ProductManager{
			ID:    idOrNew(pm.ID),
			Name:  pm.Name,
			Email: pm.Email,
		})
	}

	for _, vs := range schema.ValueStreams {
		stream := domain.ValueStream{
			ID:               idOrNew(vs.ID),
			Name:             vs.Name,
			Description:      vs.Description,
			ProductManagerID: vs.ProductManagerID,
			Products:         make([]domain.Product, 0, len(vs.Products)),
		}
		for _, p := range vs.Products {
			stream.Products = append(stream.Products, convertProduct(p, stream.ID))
		}

		stream.TotalBenefit = domain.Float64FromPtrWithDefault(portfolio.DerivedBenefit(stream.Products), (*float64)(vs.TotalBenefit))
		stream.TotalCloudCosts = domain.Float64FromPtrWithDefault(portfolio.DerivedCloudCost(stream.Products), (*float64)(vs.TotalCloudCosts))
		snap.ValueStreams = append(snap.ValueStreams, stream)
	}
	return snap
}

func convertProduct(p ProductImport, streamID string) domain.Product {
	out := domain.Product{
		ID:               idOrNew(p.ID),
		Name:             p.Name,
		Description:      p.Description,
		Horizon:          domain.Horizon(p.Horizon),
		EstimatedBenefit: float64(p.EstimatedBenefit),
		CloudCosts:       float64(p.CloudCosts),
		ValueStreamID:    domain.CoalesceStr(p.ValueStreamID, streamID),
	}
	for _, m := range p.Milestones {
		out.Milestones = append(out.Milestones, domain.Milestone{
			ID:          idOrNew(m.ID),
			Title:       m.Title,
			Description: m.Description,
			DueDate:     m.DueDate,
			Status:      domain.MilestoneStatus(m.Status),
			Owner:       m.Owner,
		})
	}
	for _, r := range p.Risks {
		out.Risks = append(out.Risks, domain.Risk{
			ID:          idOrNew(r.ID),
			Title:       r.Title,
			Description: r.Description,
			Severity:    domain.Severity(r.Severity),
			Probability: domain.Probability(r.Probability),
			Mitigation:  r.Mitigation,
			Owner:       r.Owner,
		})
	}
	for _, s := range p.Stakeholders {
		out.Stakeholders = append(out.Stakeholders, domain.Stakeholder{
			ID:       idOrNew(s.ID),
			Name:     s.Name,
			Role:     s.Role,
			Email:    s.Email,
			RACIRole: domain.RACIRole(s.RACIRole),
		})
	}
	return out
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// FromSnapshot is the inverse of Convert. Stored totals are always written
// explicitly.
func FromSnapshot(snap *domain.Snapshot) *SnapshotSchema {
	schema := &SnapshotSchema{
		ProductManagers: make([]ProductManagerImport, 0, len(snap.Managers)),
		ValueStreams:    make([]ValueStreamImport, 0, len(snap.ValueStreams)),
	}
	for _, pm := range snap.Managers {
		schema.ProductManagers = append(schema.ProductManagers, ProductManagerImport{ID: pm.ID, Name: pm.Name, Email: pm.Email})
	}
	for _, vs := range snap.ValueStreams {
		benefit, cost := Amount(vs.TotalBenefit), Amount(vs.TotalCloudCosts)
		out := ValueStreamImport{
			ID:               vs.ID,
			Name:             vs.Name,
			Description:      vs.Description,
			ProductManagerID: vs.ProductManagerID,
			TotalBenefit:     &benefit,
			TotalCloudCosts:  &cost,
			Products:         make([]ProductImport, 0, len(vs.Products)),
		}
		for _, p := range vs.Products {
			out.Products = append(out.Products, exportProduct(p))
		}
		schema.ValueStreams = append(schema.ValueStreams, out)
	}
	return schema
}

func exportProduct(p domain.Product) ProductImport {
	out := ProductImport{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Horizon:          string(p.Horizon),
		EstimatedBenefit: Amount(p.EstimatedBenefit),
		CloudCosts:       Amount(p.CloudCosts),
		ValueStreamID:    p.ValueStreamID,
	}
	for _, m := range p.Milestones {
		out.Milestones = append(out.Milestones, MilestoneImport{
			ID: m.ID, Title: m.Title, Description: m.Description,
			DueDate: m.DueDate, Status: string(m.Status), Owner: m.Owner,
		})
	}
	for _, r := range p.Risks {
		out.Risks = append(out.Risks, RiskImport{
			ID: r.ID, Title: r.Title, Description: r.Description,
			Severity: string(r.Severity), Probability: string(r.Probability),
			Mitigation: r.Mitigation, Owner: r.Owner,
		})
	}
	for _, s := range p.Stakeholders {
		out.Stakeholders = append(out.Stakeholders, StakeholderImport{
			ID: s.ID, Name: s.Name, Role: s.Role, Email: s.Email, RACIRole: string(s.RACIRole),
		})
	}
	return out
}
