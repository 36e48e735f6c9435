package portfolio

import (
	"fmt"
	"math"

	"github.com/alexanderramin/horizon/internal/domain"
)

type DiscrepancyKind string

const (
	DiscrepancyBenefit     DiscrepancyKind = "BENEFIT_MISMATCH"
	DiscrepancyCloudCost   DiscrepancyKind = "CLOUD_COST_MISMATCH"
	DiscrepancyStreamRef   DiscrepancyKind = "STREAM_REF_MISMATCH"
	DiscrepancyUnknownPM   DiscrepancyKind = "UNKNOWN_MANAGER"
	DiscrepancyDuplicateID DiscrepancyKind = "DUPLICATE_PRODUCT_ID"
)

// Discrepancy describes one inconsistency found by Reconcile.
type Discrepancy struct {
	Kind          DiscrepancyKind
	ValueStreamID string
	ProductID     string
	Stored        float64
	Derived       float64
	Message       string
}

// reconcileTolerance absorbs float summation noise.
const reconcileTolerance = 0.005

// Reconcile compares stored stream totals with the sum of their products and
// checks references between streams, products and managers. It only reports;
// stored totals remain authoritative for every other function in this
// package.
func Reconcile(streams []domain.ValueStream, managers []domain.ProductManager) []Discrepancy {
	var out []Discrepancy
	seenProducts := make(map[string]string)

	for _, vs := range streams {
		if derived := DerivedBenefit(vs.Products); math.Abs(derived-vs.TotalBenefit) > reconcileTolerance {
			out = append(out, Discrepancy{
				Kind:          DiscrepancyBenefit,
				ValueStreamID: vs.ID,
				Stored:        vs.TotalBenefit,
				Derived:       derived,
				Message: fmt.Sprintf("%s: stored benefit %.2f differs from product sum %.2f",
					vs.ID, vs.TotalBenefit, derived),
			})
		}
		if derived := DerivedCloudCost(vs.Products); math.Abs(derived-vs.TotalCloudCosts) > reconcileTolerance {
			out = append(out, Discrepancy{
				Kind:          DiscrepancyCloudCost,
				ValueStreamID: vs.ID,
				Stored:        vs.TotalCloudCosts,
				Derived:       derived,
				Message: fmt.Sprintf("%s: stored cloud cost %.2f differs from product sum %.2f",
					vs.ID, vs.TotalCloudCosts, derived),
			})
		}
		if _, ok := LookupProductManager(managers, vs.ProductManagerID); !ok {
			out = append(out, Discrepancy{
				Kind:          DiscrepancyUnknownPM,
				ValueStreamID: vs.ID,
				Message:       fmt.Sprintf("%s: product manager %q not found", vs.ID, vs.ProductManagerID),
			})
		}

		for _, p := range vs.Products {
			if p.ValueStreamID != vs.ID {
				out = append(out, Discrepancy{
					Kind:          DiscrepancyStreamRef,
					ValueStreamID: vs.ID,
					ProductID:     p.ID,
					Message: fmt.Sprintf("%s: nested under %s but references value stream %q",
						p.ID, vs.ID, p.ValueStreamID),
				})
			}
			if prev, dup := seenProducts[p.ID]; dup {
				out = append(out, Discrepancy{
					Kind:          DiscrepancyDuplicateID,
					ValueStreamID: vs.ID,
					ProductID:     p.ID,
					Message:       fmt.Sprintf("%s: product id also used in %s", p.ID, prev),
				})
				continue
			}
			seenProducts[p.ID] = vs.ID
		}
	}
	return out
}
