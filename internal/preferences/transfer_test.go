package preferences_test

import (
	"bytes"
	"encoding/csv"
	"slices"
	"strings"
	"testing"

	"itemlists/internal/preferences"
)

type mapResolver map[int]string

func (m mapResolver) NameFor(id int) (string, bool) {
	name, ok := m[id]
	return name, ok
}

func readRows(t *testing.T, data string) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return rows
}

func TestExportCSVWritesActiveList(t *testing.T) {
	doc := mustParse(t, `{"whitelistMode": true, "whitelistedItemIds": [1,2,3], "blockedItemIds": [99]}`)

	var buf bytes.Buffer
	n, err := preferences.ExportCSV(&buf, doc, nil)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}

	rows := readRows(t, buf.String())
	if !slices.Equal(rows[0], []string{"item_id", "name", "is_filtered"}) {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %v", rows)
	}
	got := map[string]bool{}
	for _, row := range rows[1:] {
		if row[1] != "Unknown" || !strings.EqualFold(row[2], "true") {
			t.Fatalf("unexpected row %v", row)
		}
		got[row[0]] = true
	}
	for _, id := range []string{"1", "2", "3"} {
		if !got[id] {
			t.Fatalf("missing id %s in %v", id, rows)
		}
	}
}

func TestExportCSVDeduplicates(t *testing.T) {
	doc := mustParse(t, `{"blockedItemIds": [5, 5, 6, 5]}`)
	var buf bytes.Buffer
	n, err := preferences.ExportCSV(&buf, doc, nil)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if n != 2 || len(readRows(t, buf.String())) != 3 {
		t.Fatalf("expected 2 unique rows, got %d: %s", n, buf.String())
	}
}

func TestExportCSVResolvesNames(t *testing.T) {
	doc := mustParse(t, `{"blockedItemIds": [4151, 7]}`)
	var buf bytes.Buffer
	if _, err := preferences.ExportCSV(&buf, doc, mapResolver{4151: "Abyssal whip"}); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	rows := readRows(t, buf.String())
	if rows[1][1] != "Abyssal whip" || rows[2][1] != "Unknown" {
		t.Fatalf("unexpected names %v", rows)
	}
}

func TestImportCSVKeepsFilteredRowsInOrder(t *testing.T) {
	input := "item_id,name,is_filtered\n1,Unknown,true\n2,Unknown,false\n3,x,TRUE\n"
	ids, err := preferences.ImportCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if !slices.Equal(ids, []int{1, 3}) {
		t.Fatalf("expected [1 3], got %v", ids)
	}
}

func TestImportCSVDropsMalformedFlags(t *testing.T) {
	input := "item_id,name,is_filtered\n1,a,yes\n2,b, true\n3,c\n4,d,True\n"
	ids, err := preferences.ImportCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if !slices.Equal(ids, []int{4}) {
		t.Fatalf("expected [4], got %v", ids)
	}
}

func TestImportCSVColumnOrderFromHeader(t *testing.T) {
	input := "\ufeffis_filtered,item_id,name\ntrue,10,a\nfalse,11,b\n"
	ids, err := preferences.ImportCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if !slices.Equal(ids, []int{10}) {
		t.Fatalf("expected [10], got %v", ids)
	}
}

func TestImportCSVErrors(t *testing.T) {
	cases := map[string]string{
		"bad id":       "item_id,name,is_filtered\nabc,x,true\n",
		"missing flag": "item_id,name\n1,x\n",
		"missing id":   "name,is_filtered\nx,true\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := preferences.ImportCSV(strings.NewReader(input)); err == nil {
				t.Fatalf("expected error for %q", input)
			}
		})
	}
}

func TestImportCSVEmptyInput(t *testing.T) {
	ids, err := preferences.ImportCSV(strings.NewReader(""))
	if err != nil || ids == nil || len(ids) != 0 {
		t.Fatalf("expected empty list, got %v, %v", ids, err)
	}
}

func TestExportImportLosesNames(t *testing.T) {
	doc := mustParse(t, `{"whitelistMode": true, "whitelistedItemIds": [8, 9]}`)
	var buf bytes.Buffer
	if _, err := preferences.ExportCSV(&buf, doc, nil); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if strings.Contains(buf.String(), "Abyssal") {
		t.Fatal("no name source was given")
	}
	ids, err := preferences.ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if !slices.Equal(ids, []int{8, 9}) {
		t.Fatalf("expected ids to survive, got %v", ids)
	}
}
