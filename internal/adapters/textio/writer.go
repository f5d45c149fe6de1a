package textio

import (
	"bufio"
	"delivery-estimate-service/internal/domain"
	"fmt"
	"io"
)

// Write prints one line per package in input order:
//
//	id discount cost [delivery_time]
//
// Amounts and times carry two decimals. The delivery time column is only
// written when withTimes is set. Packages that were never dispatched keep a
// zero delivery time, which is printed as N/A rather than 0.00 so it cannot
// be read as an immediate delivery.
func Write(w io.Writer, packages []*domain.Package, withTimes bool) error {
	bw := bufio.NewWriter(w)
	for _, p := range packages {
		var err error
		if withTimes {
			_, err = fmt.Fprintf(bw, "%s %s %s %s\n", p.ID, p.Discount.StringFixed(2), p.Cost.StringFixed(2), deliveryTime(p))
		} else {
			_, err = fmt.Fprintf(bw, "%s %s %s\n", p.ID, p.Discount.StringFixed(2), p.Cost.StringFixed(2))
		}
		if err != nil {
			return fmt.Errorf("write package %s: %w", p.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func deliveryTime(p *domain.Package) string {
	if !p.Dispatched {
		return "N/A"
	}
	return p.DeliveryTime.String()
}
