package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// selection is one --item or --addon flag value.
type selection struct {
	Name string
	Qty  int
}

// parseSelection reads "name" or "name=qty". Names may contain "=" as long as
// the part after the last one is not a number.
func parseSelection(raw string) (selection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return selection{}, fmt.Errorf("empty selection")
	}
	if i := strings.LastIndex(raw, "="); i > 0 {
		if qty, err := strconv.Atoi(strings.TrimSpace(raw[i+1:])); err == nil {
			if qty < 0 {
				return selection{}, fmt.Errorf("selection %q: quantity must not be negative", raw)
			}
			return selection{Name: strings.TrimSpace(raw[:i]), Qty: qty}, nil
		}
	}
	return selection{Name: raw, Qty: 1}, nil
}

func parseSelections(raws []string) ([]selection, error) {
	out := make([]selection, 0, len(raws))
	for _, raw := range raws {
		sel, err := parseSelection(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}
