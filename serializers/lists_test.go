package serializers

import (
	"reflect"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"React, Node.js,  Go", []string{"React", "Node.js", "Go"}},
		{"Go", []string{"Go"}},
		{"Go,,React,", []string{"Go", "React"}},
		{"", []string{}},
		{"  ,  ", []string{}},
	}
	for _, tc := range cases {
		got := SplitCSV(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitCSV(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestSplitCSVNeverNil(t *testing.T) {
	if SplitCSV("") == nil {
		t.Fatal("empty input must yield an empty slice, not nil")
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Quality\nTransparency\nSpeed", []string{"Quality", "Transparency", "Speed"}},
		{"One requirement\r\nAnother one", []string{"One requirement", "Another one"}},
		{"\n\n  \n", []string{}},
		{"", []string{}},
	}
	for _, tc := range cases {
		got := SplitLines(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitLines(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
