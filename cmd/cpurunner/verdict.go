package main

import (
	"fmt"
	"regexp"
	"strings"
)

type result int

const (
	resultNone result = iota
	resultPass
	resultFail
)

var (
	// failure summary: "Failed <n> tests"
	failRe = regexp.MustCompile(`(?i)failed\s+(\d+)\s+tests?`)
	// stage markers like "11:01"
	stageRe = regexp.MustCompile(`\b(\d{2}:\d{2})\b`)
)

type outcome struct {
	result  result
	summary string
	stage   string
}

// verdict inspects the serial output so far.
func verdict(s string) outcome {
	var o outcome
	if mm := stageRe.FindAllString(s, -1); len(mm) > 0 {
		o.stage = mm[len(mm)-1]
	}
	switch {
	case containsFold(s, "passed"):
		o.result = resultPass
	case failRe.MatchString(s):
		o.result = resultFail
		o.summary = failRe.FindString(s)
	}
	return o
}

func (o outcome) printStage() {
	if o.stage != "" {
		fmt.Printf("Last stage seen: %s\n", o.stage)
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
