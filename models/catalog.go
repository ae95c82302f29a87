package models

// The static product catalog. Matches the storefront listing; ids are
// stable and referenced by carts, favorites and orders.
var catalog = []Product{
	{ID: 1, Name: "Kit Boteco Clássico", Price: 129.90, Category: CategoryRolee, Description: "6 cervejas artesanais + petiscos"},
	{ID: 2, Name: "Kit Premium Experience", Price: 249.90, Category: CategoryRolee, Description: "12 cervejas especiais + tábua de frios"},
	{ID: 3, Name: "Kit Rolê Completo", Price: 189.90, Category: CategoryRolee, Description: "Mix de bebidas + aperitivos + jogos"},
	{ID: 4, Name: "Cesta Gourmet", Price: 159.90, Category: CategoryCestas, Description: "Vinhos, queijos, geleias e pães artesanais"},
	{ID: 5, Name: "Cesta Bem-Estar", Price: 139.90, Category: CategoryCestas, Description: "Chás especiais, mel, granolas e chocolates"},
	{ID: 6, Name: "Cesta Premium Gift", Price: 299.90, Category: CategoryCestas, Description: "Seleção especial para presentear"},
	{ID: 7, Name: "Kit Café Premium", Price: 89.90, Category: CategoryCafe, Description: "Cafés especiais, cookies e doces gourmet"},
	{ID: 8, Name: "Kit Café & Brunch", Price: 119.90, Category: CategoryCafe, Description: "Cafés selecionados, pães, geleias e queijos"},
	{ID: 9, Name: "Kit Romântico", Price: 179.90, Category: CategoryNamorados, Description: "Espumante, chocolates e petiscos"},
	{ID: 10, Name: "Kit Date Night", Price: 199.90, Category: CategoryNamorados, Description: "Vinho especial, queijos, frutas e velas"},
	{ID: 11, Name: "Kit Fit Saudável", Price: 99.90, Category: CategoryFit, Description: "Snacks proteicos, frutas secas e sucos"},
	{ID: 12, Name: "Kit Power Fitness", Price: 149.90, Category: CategoryFit, Description: "Whey, barras de proteína, pasta de amendoim"},
	{ID: 13, Name: "Kit Vegano Completo", Price: 109.90, Category: CategoryVegan, Description: "Snacks vegetais, patês, geleias e sucos"},
	{ID: 14, Name: "Kit Plant-Based Premium", Price: 169.90, Category: CategoryVegan, Description: "Queijos veganos, vinhos, chocolates"},
	{ID: 15, Name: "Kit Churrasco Starter", Price: 139.90, Category: CategoryChurrasco, Description: "Temperos especiais, molhos e cerveja"},
	{ID: 16, Name: "Kit Churrasco Premium", Price: 299.90, Category: CategoryChurrasco, Description: "Carnes nobres, acompanhamentos, bebidas"},
}

// Catalog returns a copy of the full product catalog
func Catalog() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

// ProductByID finds a catalog product by id
func ProductByID(id int) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ProductsByCategory filters the catalog by category
func ProductsByCategory(categories ...ProductCategory) []Product {
	var out []Product
	for _, p := range catalog {
		for _, cat := range categories {
			if p.Category == cat {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
