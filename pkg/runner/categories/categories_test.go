package categories

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/actd/pkg/category"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	c := Categories{Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, cat := range category.All() {
		if !strings.Contains(buf.String(), cat.Name) || !strings.Contains(buf.String(), string(cat.ID)) {
			t.Fatalf("missing %s in:\n%s", cat.ID, buf.String())
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	c := Categories{Out: &buf, JSON: true}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got []category.Category
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 6 || got[1].ID != category.PersonalGrowth {
		t.Fatalf("unexpected categories %+v", got)
	}
}
