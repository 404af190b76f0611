package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPrice indicates a negative or non-numeric price.
	ErrInvalidPrice = errors.New("pricing: invalid price")
	// ErrInvalidDiscount indicates a discount outside [0, price].
	ErrInvalidDiscount = errors.New("pricing: invalid discount")
	// ErrInvalidPercent indicates a percentage outside [0, 100].
	ErrInvalidPercent = errors.New("pricing: invalid percent")
)

// ValidatePackage checks the price invariants of a package. A discount, when
// present, must lie in [0, price]; violations are rejected, never clamped.
func ValidatePackage(p Package) error {
	if p.Price < 0 {
		return fmt.Errorf("%w: package %q price %v", ErrInvalidPrice, p.Name, p.Price)
	}
	if p.Discount != nil {
		if *p.Discount < 0 || *p.Discount > p.Price {
			return fmt.Errorf("%w: package %q discount %v exceeds price %v", ErrInvalidDiscount, p.Name, *p.Discount, p.Price)
		}
	}
	return nil
}

// ValidateOptionItem checks the string-encoded prices of an option item.
func ValidateOptionItem(item OptionItem) error {
	price, err := strconv.ParseFloat(strings.TrimSpace(item.Price), 64)
	if err != nil || price < 0 {
		return fmt.Errorf("%w: option %q price %q", ErrInvalidPrice, item.Name, item.Price)
	}
	if item.DiscountPrice != nil {
		discount, err := strconv.ParseFloat(strings.TrimSpace(*item.DiscountPrice), 64)
		if err != nil || discount < 0 || discount > price {
			return fmt.Errorf("%w: option %q discount price %q against price %q", ErrInvalidDiscount, item.Name, *item.DiscountPrice, item.Price)
		}
	}
	return nil
}

// ValidateOptionPackage checks every item in an option package.
func ValidateOptionPackage(pkg OptionPackage) error {
	for _, item := range pkg.Options {
		if err := ValidateOptionItem(item); err != nil {
			return err
		}
	}
	return nil
}

// ValidateManualProduct checks a manually entered line item.
func ValidateManualProduct(p ManualProduct) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: manual product name required", ErrInvalidPrice)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: manual product %q price %v", ErrInvalidPrice, p.Name, p.Price)
	}
	if p.Discount < 0 || p.Discount > p.Price {
		return fmt.Errorf("%w: manual product %q discount %v exceeds price %v", ErrInvalidDiscount, p.Name, p.Discount, p.Price)
	}
	if p.VAT < 0 || p.VAT > 100 {
		return fmt.Errorf("%w: manual product %q vat %v", ErrInvalidPercent, p.Name, p.VAT)
	}
	return nil
}

// ValidateDiscountPercent checks the overall offer discount. Empty and
// non-numeric values pass; the engine treats them as zero. A numeric value
// must lie in [0, 100].
func ValidateDiscountPercent(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: discount percent %q", ErrInvalidPercent, s)
	}
	return nil
}

// ValidateOfferInputs runs every price invariant over a full set of engine
// inputs. Handlers call this before the engine; the engine itself performs
// no validation.
func ValidateOfferInputs(selected *Package, added []OptionPackage, manual []ManualProduct, discountPercent string) error {
	if selected != nil {
		if err := ValidatePackage(*selected); err != nil {
			return err
		}
	}
	for _, pkg := range added {
		if err := ValidateOptionPackage(pkg); err != nil {
			return err
		}
	}
	for _, product := range manual {
		if err := ValidateManualProduct(product); err != nil {
			return err
		}
	}
	return ValidateDiscountPercent(discountPercent)
}
