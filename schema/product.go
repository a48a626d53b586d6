package schema

import (
	f "github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/slug"
)

func productDocument() *Document {
	d := define(TypeProduct, "Product",
		f.Text("name").Title("Product Name").Required(),
		f.Slug("slug", "name", slug.DefaultMaxLength).Title("Slug").Required(),

		f.Image("mainImage").Title("Main Image").Required(),
		f.ImageList("gallery").Title("Gallery Images"),

		f.Text("category").Title("Category").Options(categoryOptions...).Required(),
		f.Text("gender").Title("Gender").Options(genderOptions...).Default(string(GenderWomen)),
		f.TextList("sizes").Title("Available Sizes").
			Description("Select all available sizes (for clothing only)").
			Values(clothingSizes...).
			HiddenUnless("category", string(CategoryClothing)).
			Required(),

		f.Number("price").Title("Price (₵)").Required().Min(0),
		f.Number("discountPrice").Title("Discount Price (₵)").Min(0),
		f.Number("stockQuantity").Title("Stock Quantity").Required().Min(0).Integer(),

		f.TextList("colors").Title("Available Colors").Description("Example: Red, Black, White, Blue"),
		f.Blocks("description").Title("Product Description").Description("Rich text description of the product."),

		f.Text("status").Title("Product Status").Options(productStatusOptions...).
			Default(string(ProductAvailable)).Required(),
		f.Boolean("isFeatured").Title("Featured Product?").Default(false),
		f.DateTime("createdAt").Title("Created At").DefaultNow(),
	)

	d.Preview = map[string]string{
		"title":    "name",
		"subtitle": "category",
		"media":    "mainImage",
	}
	return d
}
