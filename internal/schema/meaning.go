package schema

import "strings"

var abbreviations = map[string]string{
	// Common Nouns
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "ph": "phone", "mob": "phone",
	"pwd": "password", "passwd": "password", "pw": "password",
	"img": "image", "url": "url", "ip": "ip", "zip": "zipcode", "post": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject",
	"doc": "document", "usr": "user", "emp": "employee",
	"dept": "department", "grp": "group", "cat": "category",
	"loc": "location", "lat": "latitude", "lng": "longitude", "lon": "longitude",
	"st": "street", "prov": "province", "dist": "district",
	"bal": "balance", "avg": "average", "uid": "id", "pid": "id",

	// Verbs / Status
	"reg": "registered", "mod": "modified", "del": "deleted", "cre": "created",
	"upd": "updated", "yn": "yesno", "stat": "status", "sts": "status",
	"typ": "type", "val": "value", "ord": "order", "seq": "sequence", "idx": "index",
	"is": "yesno", "flg": "flag",
}

// commentMeanings is checked in order; the first keyword found in the
// column comment wins.
var commentMeanings = []struct {
	meaning  string
	keywords []string
}{
	{"phone", []string{"phone", "mobile", "cell", "fax"}},
	{"email", []string{"email", "e-mail", "mail"}},
	{"ip", []string{"ip address", "ipv4"}},
	{"address", []string{"address", "street"}},
	{"zipcode", []string{"zip", "postal", "postcode"}},
	{"name", []string{"name"}},
	{"password", []string{"password", "passphrase"}},
	{"title", []string{"title", "subject", "headline"}},
	{"description", []string{"description", "desc", "content", "body"}},
	{"date", []string{"date", "time"}},
	{"price", []string{"price", "cost", "amount"}},
	{"count", []string{"count", "qty", "quantity"}},
	{"yesno", []string{"flag", "yes/no", "enabled"}},
	{"country", []string{"country"}},
	{"city", []string{"city"}},
	{"url", []string{"url", "link", "website"}},
}

// AnalyzeMeaning guesses what a column holds. The comment wins when it
// names a known concept; otherwise abbreviations in the snake_case name
// are expanded (usr_nm becomes "user name").
func AnalyzeMeaning(colName, comment string) string {
	c := strings.ToLower(comment)
	for _, m := range commentMeanings {
		for _, kw := range m.keywords {
			if strings.Contains(c, kw) {
				return m.meaning
			}
		}
	}

	parts := strings.Split(strings.ToLower(colName), "_")
	decodedParts := make([]string, 0, len(parts))
	for _, part := range parts {
		if full, ok := abbreviations[part]; ok {
			decodedParts = append(decodedParts, full)
		} else {
			decodedParts = append(decodedParts, part)
		}
	}
	return strings.Join(decodedParts, " ")
}
