package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"product-catalog/client/api"
)

// categories is the suggested set shown by the product form. The server
// accepts any free-text category; this list is a UI convenience only.
var categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
	"Toys",
	"Food & Beverages",
	"Health & Beauty",
}

func (a *App) addProduct(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return
	}
	priceStr, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return
	}
	category, err := getSimpleText(a.reader, "Category (suggestions: "+strings.Join(categories, ", ")+")", a.out)
	if err != nil {
		return
	}
	stockStr, err := getSimpleText(a.reader, "Stock", a.out)
	if err != nil {
		return
	}
	sku, err := getSimpleText(a.reader, "SKU", a.out)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return
	}
	imagePath, err := getSimpleText(a.reader, "Image file (optional, jpeg/png/jpg/gif up to 2 MB)", a.out)
	if err != nil {
		return
	}

	price, priceErr := strconv.ParseFloat(priceStr, 64)
	stock, stockErr := strconv.Atoi(stockStr)

	local := map[string]string{}
	if strings.TrimSpace(name) == "" {
		local["name"] = "Product name is required"
	}
	if priceErr != nil || price < 0.01 {
		local["price"] = "Price must be at least 0.01"
	}
	if category == "" {
		local["category"] = "Category is required"
	}
	if stockErr != nil || stock < 0 {
		local["stock"] = "Stock must be 0 or greater"
	}
	if strings.TrimSpace(sku) == "" {
		local["sku"] = "SKU is required"
	}
	if imagePath != "" {
		if _, err := os.Stat(imagePath); err != nil {
			local["image"] = "Image file not found"
		}
	}
	if len(local) > 0 {
		for _, field := range sortedKeys(local) {
			printlnFn(fmt.Sprintf("  %s: %s", field, local[field]))
		}
		return
	}

	input := api.ProductInput{
		Name:        name,
		Price:       price,
		Category:    category,
		Stock:       stock,
		SKU:         sku,
		Description: description,
	}
	product, err := a.api.CreateProduct(ctx, input, imagePath)
	if err != nil {
		a.printError(err)
		return
	}
	printlnFn(fmt.Sprintf("Created product #%d %q (SKU %s)", product.ID, product.Name, product.SKU))
	if product.Image != nil {
		printlnFn("Image: " + *product.Image)
	}
}

// list renders one page of the catalog and lets the user page through it.
func (a *App) list(ctx context.Context) {
	page := 1
	for {
		products, meta, err := a.api.ListProducts(ctx, page)
		if err != nil {
			a.printError(err)
			return
		}

		if len(products) == 0 {
			printlnFn("No products found. Add your first product!")
		}
		for _, p := range products {
			printlnFn(formatProduct(p))
		}
		if meta != nil {
			printlnFn(fmt.Sprintf("Showing %d to %d of %d products (page %d of %d)",
				meta.From, meta.To, meta.Total, meta.CurrentPage, meta.LastPage))
		}
		if meta == nil || meta.LastPage <= 1 {
			return
		}
		printlnFn(renderPageStrip(meta.CurrentPage, meta.LastPage))

		cmd, err := getSimpleText(a.reader, "Page (n = next, p = previous, number, Enter to leave)", a.out)
		if err != nil || cmd == "" {
			return
		}
		switch cmd {
		case "n":
			if page < meta.LastPage {
				page++
			}
		case "p":
			if page > 1 {
				page--
			}
		default:
			if n, err := strconv.Atoi(cmd); err == nil && n >= 1 && n <= meta.LastPage {
				page = n
			}
		}
	}
}

func formatProduct(p api.Product) string {
	line := fmt.Sprintf("#%-4d %-30s $%8.2f  %-16s %4d units  %s",
		p.ID, truncate(p.Name, 30), p.Price, truncate(p.Category, 16), p.Stock, p.SKU)
	switch {
	case p.Stock == 0:
		line += "  [out of stock]"
	case p.Stock < 10:
		line += "  [low stock]"
	}
	return line
}

// renderPageStrip draws the page numbers, bracketing the current page.
func renderPageStrip(current, last int) string {
	var b strings.Builder
	for i, p := range PageNumbers(current, last) {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case p == Ellipsis:
			b.WriteString("...")
		case p == current:
			fmt.Fprintf(&b, "[%d]", p)
		default:
			fmt.Fprintf(&b, "%d", p)
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
