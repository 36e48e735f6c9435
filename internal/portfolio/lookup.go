package portfolio

import "github.com/alexanderramin/horizon/internal/domain"

// LookupProductManager returns the manager with the given id. The boolean is
// false when no manager matches; choosing a display label for that case is
// left to the caller.
func LookupProductManager(managers []domain.ProductManager, id string) (domain.ProductManager, bool) {
	for _, pm := range managers {
		if pm.ID == id {
			return pm, true
		}
	}
	return domain.ProductManager{}, false
}

// FindValueStream returns the stream with the given id.
func FindValueStream(streams []domain.ValueStream, id string) (domain.ValueStream, bool) {
	for _, vs := range streams {
		if vs.ID == id {
			return vs, true
		}
	}
	return domain.ValueStream{}, false
}

// FindProduct returns the product with the given id together with the stream
// that contains it.
func FindProduct(streams []domain.ValueStream, id string) (domain.Product, domain.ValueStream, bool) {
	for _, vs := range streams {
		for _, p := range vs.Products {
			if p.ID == id {
				return p, vs, true
			}
		}
	}
	return domain.Product{}, domain.ValueStream{}, false
}
