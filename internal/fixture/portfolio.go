// Package fixture provides the bundled demonstration portfolio. Each call
// builds a fresh graph, so no dataset is shared through package state.
package fixture

import (
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
)

// SourceName identifies snapshots built by this package.
const SourceName = "fixture"

// Snapshot returns the bundled portfolio: four product managers and three
// value streams holding seven products.
func Snapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Managers:     Managers(),
		ValueStreams: ValueStreams(),
		Source:       SourceName,
		LoadedAt:     time.Now().UTC(),
	}
}

func Managers() []domain.ProductManager {
	return []domain.ProductManager{
		{ID: "pm1", Name: "Sarah Johnson", Email: "sarah.johnson@company.com"},
		{ID: "pm2", Name: "Mike Chen", Email: "mike.chen@company.com"},
		{ID: "pm3", Name: "Emma Davis", Email: "emma.davis@company.com"},
		{ID: "pm4", Name: "James Wilson", Email: "james.wilson@company.com"},
	}
}

func ValueStreams() []domain.ValueStream {
	return []domain.ValueStream{
		efficiencyStream(),
		customerExperienceStream(),
		innovationStream(),
	}
}

func efficiencyStream() domain.ValueStream {
	return domain.ValueStream{
		ID:               "vs1",
		Name:             "Efficiency Value Stream",
		Description:      "Products that boost efficiency of CAPEX and OPEX spending",
		ProductManagerID: "pm1",
		TotalBenefit:     2800000,
		TotalCloudCosts:  45000,
		Products: []domain.Product{
			{
				ID:               "p1",
				Name:             "Cost Optimization Platform",
				Description:      "AI-powered cost optimization for cloud infrastructure",
				Horizon:          domain.HorizonInvesting,
				EstimatedBenefit: 1500000,
				CloudCosts:       25000,
				ValueStreamID:    "vs1",
				Milestones: []domain.Milestone{
					{
						ID:          "m1",
						Title:       "MVP Launch",
						Description: "Launch minimum viable product with core features",
						DueDate:     "2024-03-15",
						Status:      domain.MilestoneCompleted,
						Owner:       "Sarah Johnson",
					},
					{
						ID:          "m2",
						Title:       "AI Integration",
						Description: "Integrate machine learning algorithms for cost prediction",
						DueDate:     "2024-06-30",
						Status:      domain.MilestoneInProgress,
						Owner:       "Tech Lead",
					},
				},
				Risks: []domain.Risk{
					{
						ID:          "r1",
						Title:       "Data Quality Issues",
						Description: "Poor data quality may affect AI model accuracy",
						Severity:    domain.SeverityHigh,
						Probability: domain.ProbabilityMedium,
						Mitigation:  "Implement data validation and cleaning processes",
						Owner:       "Data Engineer",
					},
				},
				Stakeholders: []domain.Stakeholder{
					{ID: "s1", Name: "Sarah Johnson", Role: "Product Manager", Email: "sarah.johnson@company.com", RACIRole: domain.RACIAccountable},
					{ID: "s2", Name: "John Tech", Role: "Tech Lead", Email: "john.tech@company.com", RACIRole: domain.RACIResponsible},
				},
			},
			{
				ID:               "p2",
				Name:             "Automated Procurement System",
				Description:      "Streamline procurement processes and reduce manual work",
				Horizon:          domain.HorizonExtracting,
				EstimatedBenefit: 800000,
				CloudCosts:       12000,
				ValueStreamID:    "vs1",
				Milestones: []domain.Milestone{
					{
						ID:          "m3",
						Title:       "System Integration",
						Description: "Integrate with existing ERP systems",
						DueDate:     "2024-04-20",
						Status:      domain.MilestoneCompleted,
						Owner:       "Integration Team",
					},
				},
				Risks: []domain.Risk{
					{
						ID:          "r2",
						Title:       "Legacy System Compatibility",
						Description: "Challenges with legacy system integration",
						Severity:    domain.SeverityMedium,
						Probability: domain.ProbabilityLow,
						Mitigation:  "Develop adapter layers for legacy systems",
						Owner:       "System Architect",
					},
				},
				Stakeholders: []domain.Stakeholder{
					{ID: "s3", Name: "Sarah Johnson", Role: "Product Manager", Email: "sarah.johnson@company.com", RACIRole: domain.RACIAccountable},
				},
			},
			{
				ID:               "p3",
				Name:             "Resource Planning Tool",
				Description:      "Advanced resource planning and allocation system",
				Horizon:          domain.HorizonEmerging,
				EstimatedBenefit: 500000,
				CloudCosts:       8000,
				ValueStreamID:    "vs1",
				Milestones: []domain.Milestone{
					{
						ID:          "m4",
						Title:       "Requirements Gathering",
						Description: "Complete requirements analysis with stakeholders",
						DueDate:     "2024-02-28",
						Status:      domain.MilestoneCompleted,
						Owner:       "Business Analyst",
					},
				},
			},
		},
	}
}

func customerExperienceStream() domain.ValueStream {
	return domain.ValueStream{
		ID:               "vs2",
		Name:             "Customer Experience",
		Description:      "Products focused on improving customer satisfaction and engagement",
		ProductManagerID: "pm2",
		TotalBenefit:     1900000,
		TotalCloudCosts:  32000,
		Products: []domain.Product{
			{
				ID:               "p4",
				Name:             "Customer Journey Analytics",
				Description:      "Real-time customer journey tracking and optimization",
				Horizon:          domain.HorizonInvesting,
				EstimatedBenefit: 1200000,
				CloudCosts:       20000,
				ValueStreamID:    "vs2",
				Milestones: []domain.Milestone{
					{
						ID:          "m5",
						Title:       "Analytics Dashboard",
						Description: "Launch customer analytics dashboard",
						DueDate:     "2024-05-15",
						Status:      domain.MilestoneInProgress,
						Owner:       "Mike Chen",
					},
				},
				Risks: []domain.Risk{
					{
						ID:          "r3",
						Title:       "Privacy Compliance",
						Description: "Ensuring GDPR and privacy regulation compliance",
						Severity:    domain.SeverityHigh,
						Probability: domain.ProbabilityMedium,
						Mitigation:  "Work with legal team for compliance review",
						Owner:       "Compliance Officer",
					},
				},
				Stakeholders: []domain.Stakeholder{
					{ID: "s4", Name: "Mike Chen", Role: "Product Manager", Email: "mike.chen@company.com", RACIRole: domain.RACIAccountable},
				},
			},
			{
				ID:               "p5",
				Name:             "Personalization Engine",
				Description:      "AI-powered content and experience personalization",
				Horizon:          domain.HorizonEvaluation,
				EstimatedBenefit: 700000,
				CloudCosts:       12000,
				ValueStreamID:    "vs2",
			},
		},
	}
}

func innovationStream() domain.ValueStream {
	return domain.ValueStream{
		ID:               "vs3",
		Name:             "Innovation Pipeline",
		Description:      "Experimental products and emerging technologies",
		ProductManagerID: "pm3",
		TotalBenefit:     1200000,
		TotalCloudCosts:  28000,
		Products: []domain.Product{
			{
				ID:               "p6",
				Name:             "AI Assistant Platform",
				Description:      "Intelligent assistant for business operations",
				Horizon:          domain.HorizonIdea,
				EstimatedBenefit: 800000,
				CloudCosts:       18000,
				ValueStreamID:    "vs3",
			},
			{
				ID:               "p7",
				Name:             "Blockchain Integration",
				Description:      "Blockchain-based verification system",
				Horizon:          domain.HorizonEvaluation,
				EstimatedBenefit: 400000,
				CloudCosts:       10000,
				ValueStreamID:    "vs3",
			},
		},
	}
}
