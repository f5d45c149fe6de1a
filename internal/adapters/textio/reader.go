package textio

import (
	"bufio"
	"delivery-estimate-service/internal/domain"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedInput is wrapped by every parse failure of Read.
var ErrMalformedInput = errors.New("malformed input")

const maxPrealloc = 1024

// Input is one estimation request as read from text.
type Input struct {
	BaseCost int64
	Packages []*domain.Package
	// Fleet is nil when the input carries no fleet line.
	Fleet *domain.Fleet
}

// tokens walks whitespace-separated words and remembers their position for
// error messages.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokens) next(field string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", field, err)
		}
		return "", fmt.Errorf("%w: missing %s after token %d", ErrMalformedInput, field, t.pos)
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokens) integer(field string) (int64, error) {
	tok, err := t.next(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %s must be an integer, got %q", ErrMalformedInput, t.pos, field, tok)
	}
	return n, nil
}

// Read parses
//
//	base_cost no_of_packages
//	pkg_id weight distance offer_code   (no_of_packages times)
//	[no_of_vehicles max_speed max_load]
//
// Tokens may be split across lines in any way. The fleet line is optional;
// when present it must be complete and nothing may follow it.
func Read(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	t := &tokens{sc: sc}

	base, err := t.integer("base_cost")
	if err != nil {
		return nil, err
	}
	count, err := t.integer("no_of_packages")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: no_of_packages must be >= 0, got %d", ErrMalformedInput, count)
	}

	// The count is not trusted for allocation; missing packages are
	// reported once the tokens run out.
	in := &Input{BaseCost: base, Packages: make([]*domain.Package, 0, min(count, maxPrealloc))}
	for i := int64(0); i < count; i++ {
		pkg, err := readPackage(t, i+1)
		if err != nil {
			return nil, err
		}
		in.Packages = append(in.Packages, pkg)
	}

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read fleet: %w", err)
		}
		return in, nil
	}
	t.pos++

	vehicles, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: token %d: no_of_vehicles must be an integer, got %q", ErrMalformedInput, t.pos, sc.Text())
	}
	speed, err := t.integer("max_speed")
	if err != nil {
		return nil, err
	}
	load, err := t.integer("max_carriable_weight")
	if err != nil {
		return nil, err
	}
	in.Fleet = &domain.Fleet{Vehicles: vehicles, MaxSpeed: int(speed), MaxLoad: int(load)}

	if sc.Scan() {
		return nil, fmt.Errorf("%w: token %d: unexpected %q after fleet line", ErrMalformedInput, t.pos+1, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return in, nil
}

func readPackage(t *tokens, n int64) (*domain.Package, error) {
	field := func(name string) string { return fmt.Sprintf("package %d %s", n, name) }

	id, err := t.next(field("id"))
	if err != nil {
		return nil, err
	}
	weight, err := t.integer(field("weight"))
	if err != nil {
		return nil, err
	}
	distance, err := t.integer(field("distance"))
	if err != nil {
		return nil, err
	}
	offer, err := t.next(field("offer_code"))
	if err != nil {
		return nil, err
	}
	return domain.NewPackage(id, int(weight), int(distance), offer), nil
}
