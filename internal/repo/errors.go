package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the store.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInventoryNotFound is returned when no inventory record exists for the
	// requested ID or product.
	ErrInventoryNotFound = errors.New("inventory record not found")

	// ErrSettingNotFound is returned when a settings row is not found.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateInventory is returned when creating a second inventory
	// record for a product that already has one.
	ErrDuplicateInventory = errors.New("inventory record already exists for product")

	// ErrDuplicatedValueUnique is returned when an insert violates a
	// uniqueness constraint (e.g. product SKU, username).
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
