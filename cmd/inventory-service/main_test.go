package main

import "testing"

func TestParseSeed(t *testing.T) {
	stock, err := parseSeed("iphone_13=100, iphone_13_red=0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if stock["iphone_13"] != 100 || stock["iphone_13_red"] != 0 {
		t.Errorf("unexpected stock map: %v", stock)
	}
	if len(stock) != 2 {
		t.Errorf("expected 2 entries, got %d", len(stock))
	}
}

func TestParseSeed_Malformed(t *testing.T) {
	for _, bad := range []string{"iphone_13", "iphone_13=abc", "iphone_13=-1"} {
		if _, err := parseSeed(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
