package catalog

import (
	"testing"

	"github.com/luxedrive/rental-api/internal/model"
)

func car(id uint64, title, brand string, dailyCents uint32, opts ...func(*model.Car)) model.Car {
	c := model.Car{ID: id, Title: title, Brand: brand}
	c.Pricing.DailyCents = dailyCents
	for _, o := range opts {
		o(&c)
	}
	return c
}

func fixture() []model.Car {
	return []model.Car{
		car(1, "Ferrari 488 Spider", "Ferrari", 15000, func(c *model.Car) {
			c.Categories = []string{model.CategorySupercar, model.CategoryConvertible}
			c.FuelType = "Petrol"
			c.Transmission = "Automatic"
		}),
		car(2, "Ferrari Roma", "Ferrari", 25000, func(c *model.Car) {
			c.Categories = []string{model.CategoryLuxury}
			c.FuelType = "Petrol"
			c.Transmission = "Automatic"
		}),
		car(3, "Huracan Evo", "Lamborghini", 18000, func(c *model.Car) {
			c.Categories = []string{model.CategorySupercar}
			c.FuelType = "Petrol"
			c.Transmission = "Automatic"
		}),
		car(4, "Taycan Turbo S", "Porsche", 9000, func(c *model.Car) {
			c.Categories = []string{model.CategorySports}
			c.FuelType = "Electric"
			c.Transmission = "Automatic"
		}),
	}
}

// Price range and brand predicates combine as a conjunction: only cars
// satisfying both survive.
func TestApplyConjunction(t *testing.T) {
	f := DefaultFilter()
	f.PriceMin = 100
	f.PriceMax = 200
	f.Brand = "ferrari" // case-insensitive

	got := Apply(fixture(), f)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only car 1, got %v", ids(got))
	}
}

// A default filter is the identity: same cars, same order.
func TestApplyDefaultIsIdentity(t *testing.T) {
	cars := fixture()
	got := Apply(cars, DefaultFilter())
	if len(got) != len(cars) {
		t.Fatalf("expected %d cars, got %d", len(cars), len(got))
	}
	for i := range cars {
		if got[i].ID != cars[i].ID {
			t.Fatalf("order changed at %d: got %d want %d", i, got[i].ID, cars[i].ID)
		}
	}
}

func TestApplySearchTitleOnly(t *testing.T) {
	f := DefaultFilter()
	f.Search = "roma"
	if got := Apply(fixture(), f); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("search by title: got %v", ids(got))
	}
	// Searching a brand name that appears in no title matches nothing.
	f.Search = "porsche"
	if got := Apply(fixture(), f); len(got) != 0 {
		t.Fatalf("search must not match brand, got %v", ids(got))
	}
}

func TestApplyPriceBoundsInclusive(t *testing.T) {
	f := DefaultFilter()
	f.PriceMin = 150
	f.PriceMax = 180
	got := Apply(fixture(), f)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("inclusive bounds: got %v", ids(got))
	}
}

func TestApplyCategoryAndFuel(t *testing.T) {
	f := DefaultFilter()
	f.Category = model.CategorySupercar
	f.FuelType = "petrol"
	got := Apply(fixture(), f)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("category+fuel: got %v", ids(got))
	}
}

// 13 items at page size 6: page 1 holds [0..5], page 3 holds only item 12,
// and there are exactly 3 pages.
func TestPaginate(t *testing.T) {
	cars := make([]model.Car, 13)
	for i := range cars {
		cars[i].ID = uint64(i)
	}

	p1 := Paginate(cars, 1, 6)
	if p1.TotalPages != 3 || p1.TotalItems != 13 {
		t.Fatalf("totals: pages=%d items=%d", p1.TotalPages, p1.TotalItems)
	}
	if len(p1.Items) != 6 || p1.Items[0].ID != 0 || p1.Items[5].ID != 5 {
		t.Fatalf("page 1 wrong: %v", ids(p1.Items))
	}

	p3 := Paginate(cars, 3, 6)
	if len(p3.Items) != 1 || p3.Items[0].ID != 12 {
		t.Fatalf("page 3 wrong: %v", ids(p3.Items))
	}

	p9 := Paginate(cars, 9, 6)
	if len(p9.Items) != 0 || p9.TotalPages != 3 {
		t.Fatalf("out-of-range page wrong: %v totalPages=%d", ids(p9.Items), p9.TotalPages)
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate(nil, 1, 6)
	if len(p.Items) != 0 || p.TotalPages != 0 || p.TotalItems != 0 {
		t.Fatalf("empty list: %+v", p)
	}
}

func ids(cars []model.Car) []uint64 {
	out := make([]uint64, len(cars))
	for i, c := range cars {
		out[i] = c.ID
	}
	return out
}
