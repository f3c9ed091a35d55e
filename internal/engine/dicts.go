package engine

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

type textFunc func(f *gofakeit.Faker) string

// meaningGenerators maps a column meaning (see schema.AnalyzeMeaning) to
// a fake value source. Lookups try the meaning first and then each word
// of it, so "user name" finds "name".
var meaningGenerators = map[string]textFunc{
	"phone":       func(f *gofakeit.Faker) string { return f.PhoneFormatted() },
	"email":       func(f *gofakeit.Faker) string { return f.Email() },
	"ip":          func(f *gofakeit.Faker) string { return f.IPv4Address() },
	"address":     func(f *gofakeit.Faker) string { return f.Street() },
	"street":      func(f *gofakeit.Faker) string { return f.Street() },
	"zipcode":     func(f *gofakeit.Faker) string { return f.Zip() },
	"name":        func(f *gofakeit.Faker) string { return f.Name() },
	"user":        func(f *gofakeit.Faker) string { return f.Username() },
	"password":    func(f *gofakeit.Faker) string { return f.Password(true, true, true, false, false, 12) },
	"title":       func(f *gofakeit.Faker) string { return f.HipsterSentence(3) },
	"subject":     func(f *gofakeit.Faker) string { return f.HipsterSentence(3) },
	"description": func(f *gofakeit.Faker) string { return f.Sentence(12) },
	"message":     func(f *gofakeit.Faker) string { return f.Sentence(8) },
	"text":        func(f *gofakeit.Faker) string { return f.Sentence(8) },
	"country":     func(f *gofakeit.Faker) string { return f.Country() },
	"city":        func(f *gofakeit.Faker) string { return f.City() },
	"province":    func(f *gofakeit.Faker) string { return f.State() },
	"url":         func(f *gofakeit.Faker) string { return f.URL() },
	"image":       func(f *gofakeit.Faker) string { return f.URL() + ".png" },
	"code":        func(f *gofakeit.Faker) string { return strings.ToUpper(f.LetterN(3)) + f.DigitN(3) },
	"status":      func(f *gofakeit.Faker) string { return f.RandomString([]string{"active", "pending", "closed"}) },
	"yesno":       func(f *gofakeit.Faker) string { return f.RandomString([]string{"Y", "N"}) },
	"company":     func(f *gofakeit.Faker) string { return f.Company() },
	"department":  func(f *gofakeit.Faker) string { return f.JobDescriptor() },
	"latitude":    func(f *gofakeit.Faker) string { return fmt.Sprintf("%.6f", f.Latitude()) },
	"longitude":   func(f *gofakeit.Faker) string { return fmt.Sprintf("%.6f", f.Longitude()) },
}

// lookupMeaning finds a generator for the meaning, then for any of its
// words from the last to the first ("registered date" tries "date" before
// "registered").
func lookupMeaning(meaning string) (textFunc, bool) {
	if fn, ok := meaningGenerators[meaning]; ok {
		return fn, true
	}
	words := strings.Fields(meaning)
	for i := len(words) - 1; i >= 0; i-- {
		if fn, ok := meaningGenerators[words[i]]; ok {
			return fn, true
		}
	}
	return nil, false
}
