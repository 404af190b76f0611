package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePackageDiscountBound(t *testing.T) {
	ok := Package{Name: "P", Price: 1000, Discount: floatPtr(1000)}
	require.NoError(t, ValidatePackage(ok))

	over := Package{Name: "P", Price: 1000, Discount: floatPtr(1001)}
	err := ValidatePackage(over)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	negative := Package{Name: "P", Price: -1}
	assert.ErrorIs(t, ValidatePackage(negative), ErrInvalidPrice)
}

func TestValidatePackageZeroDiscountIsValid(t *testing.T) {
	// An explicit discount of zero is presence, not absence.
	pkg := Package{Name: "P", Price: 500, Discount: floatPtr(0)}
	assert.NoError(t, ValidatePackage(pkg))
}

func TestValidateOptionItem(t *testing.T) {
	require.NoError(t, ValidateOptionItem(OptionItem{Name: "O", Price: "1000"}))
	require.NoError(t, ValidateOptionItem(OptionItem{Name: "O", Price: "1000", DiscountPrice: strPtr("1000")}))

	assert.ErrorIs(t, ValidateOptionItem(OptionItem{Name: "O", Price: "not-a-number"}), ErrInvalidPrice)
	assert.ErrorIs(t, ValidateOptionItem(OptionItem{Name: "O", Price: "-5"}), ErrInvalidPrice)
	assert.ErrorIs(t, ValidateOptionItem(OptionItem{Name: "O", Price: "1000", DiscountPrice: strPtr("1001")}), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidateOptionItem(OptionItem{Name: "O", Price: "1000", DiscountPrice: strPtr("x")}), ErrInvalidDiscount)
}

func TestValidateManualProduct(t *testing.T) {
	ok := ManualProduct{Name: "M", Price: 100, Discount: 100, VAT: 25, TotalPrice: 0}
	require.NoError(t, ValidateManualProduct(ok))

	assert.Error(t, ValidateManualProduct(ManualProduct{Name: "", Price: 100}))
	assert.ErrorIs(t, ValidateManualProduct(ManualProduct{Name: "M", Price: 100, Discount: 101}), ErrInvalidDiscount)
	assert.ErrorIs(t, ValidateManualProduct(ManualProduct{Name: "M", Price: 100, VAT: 120}), ErrInvalidPercent)
}

func TestValidateDiscountPercent(t *testing.T) {
	require.NoError(t, ValidateDiscountPercent(""))
	require.NoError(t, ValidateDiscountPercent("0"))
	require.NoError(t, ValidateDiscountPercent("100"))
	// Non-numeric input is the engine's lenient case, not a validation error.
	require.NoError(t, ValidateDiscountPercent("abc"))

	assert.ErrorIs(t, ValidateDiscountPercent("101"), ErrInvalidPercent)
	assert.ErrorIs(t, ValidateDiscountPercent("-1"), ErrInvalidPercent)
}

func TestValidateOfferInputs(t *testing.T) {
	pkg := &Package{Name: "P", Price: 1000, Discount: floatPtr(2000)}
	err := ValidateOfferInputs(pkg, nil, nil, "")
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	added := []OptionPackage{{Options: []OptionItem{{Name: "O", Price: "bad"}}}}
	assert.ErrorIs(t, ValidateOfferInputs(nil, added, nil, ""), ErrInvalidPrice)

	assert.NoError(t, ValidateOfferInputs(nil, nil, nil, "50"))
}
