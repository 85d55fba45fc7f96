package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	if strings.TrimSpace(p.SKU) == "" {
		errs = append(errs, ValidationError{Field: "sku", Description: "sku is required"})
	}
	return errs
}

func validateCategory(c CategoryRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	return errs
}

func validateInventory(req InventoryRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.ProductID) == "" {
		errs = append(errs, ValidationError{Field: "product_id", Description: "product_id is required"})
	}
	if req.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if req.MinQuantity < 0 {
		errs = append(errs, ValidationError{Field: "min_quantity", Description: "min_quantity cannot be negative"})
	}
	return errs
}
