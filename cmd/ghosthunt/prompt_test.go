package main

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestPromptNames(t *testing.T) {
	var out bytes.Buffer
	got, err := promptNames(strings.NewReader("ray\n\nray\negon\n"), &out, 2)
	if err != nil {
		t.Fatalf("promptNames: %v", err)
	}
	if want := []string{"ray", "egon"}; !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "Hunter [ray] already exists. Please enter a unique hunter name.") {
		t.Errorf("missing duplicate message in %q", out.String())
	}
}

func TestPromptNamesShortInput(t *testing.T) {
	_, err := promptNames(strings.NewReader("ray\n"), io.Discard, 3)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v", err)
	}
}

func TestHunterNamesFlag(t *testing.T) {
	got, err := hunterNames(" ray, egon ,peter", 4)
	if err != nil {
		t.Fatalf("hunterNames: %v", err)
	}
	if want := []string{"ray", "egon", "peter"}; !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v", got)
	}
	if _, err := hunterNames("ray,ray", 2); err == nil {
		t.Error("expected duplicate error")
	}
	if _, err := hunterNames("ray,,egon", 2); err == nil {
		t.Error("expected blank error")
	}
}
