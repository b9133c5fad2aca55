package gen

import (
	"fmt"
	"math/rand"

	"github.com/copperbi/coppergen/internal/model"
)

// GenerateProducts builds the catalog: perCategory products in each
// device category, list price uniform within the category band, cost a
// 25-45% fraction of list so cost < list_price holds by construction.
func GenerateProducts(r *rand.Rand, perCategory int) []model.Product {
	var products []model.Product
	prodID := 1
	for _, cat := range model.AllDeviceCategories {
		for i := 0; i < perCategory; i++ {
			name := cat.Products[i%len(cat.Products)]
			if series := i / len(cat.Products); series > 0 {
				name = fmt.Sprintf("%s Series %d", name, series+1)
			}
			listPrice := uniform(r, cat.PriceLo, cat.PriceHi)
			products = append(products, model.Product{
				ProductID: fmt.Sprintf("PROD-%03d", prodID),
				Name:      name,
				Category:  cat.Name,
				ListPrice: listPrice,
				Cost:      listPrice * uniform(r, 0.25, 0.45),
				SKU:       randomSKU(r),
			})
			prodID++
		}
	}
	return products
}

func randomSKU(r *rand.Rand) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return fmt.Sprintf("SKU-%c%c-%04d",
		letters[r.Intn(len(letters))],
		letters[r.Intn(len(letters))],
		r.Intn(10000))
}
