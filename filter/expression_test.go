package filter_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/nisimpson/ezcms/filter"
	"github.com/stretchr/testify/assert"
)

func TestQueryValues(t *testing.T) {
	type testcase struct {
		name       string
		builder    filter.Builder
		wantValues url.Values
		wantErr    bool
	}

	for _, tc := range []testcase{
		{
			name:    "equality on a field attribute",
			builder: filter.Equals(filter.FieldOf("title"), "go in practice"),
			wantValues: url.Values{
				"filter[fields.title][eq]": {"go in practice"},
			},
		},
		{
			name:    "inequality with numeric value",
			builder: filter.NotEquals(filter.AttributeOf("version"), 3),
			wantValues: url.Values{
				"filter[version][ne]": {"3"},
			},
		},
		{
			name: "conjunction merges entries",
			builder: filter.Equals(filter.AttributeOf("type"), "post").
				And(filter.GreaterThan(filter.FieldOf("views"), 100)),
			wantValues: url.Values{
				"filter[type][eq]":         {"post"},
				"filter[fields.views][gt]": {"100"},
			},
		},
		{
			name: "disjunction groups members",
			builder: filter.Equals(filter.AttributeOf("type"), "post").
				Or(filter.Equals(filter.AttributeOf("type"), "page")).
				Or(filter.HasPrefix(filter.FieldOf("slug"), "blog/")),
			wantValues: url.Values{
				"filter[or][0][type][eq]":           {"post"},
				"filter[or][1][type][eq]":           {"page"},
				"filter[or][2][fields.slug][prefix]": {"blog/"},
			},
		},
		{
			name:    "negation nests under not",
			builder: filter.Exists(filter.FieldOf("archived_at")).Not(),
			wantValues: url.Values{
				"filter[not][fields.archived_at][exists]": {"true"},
			},
		},
		{
			name:    "absence check",
			builder: filter.NotExists(filter.FieldOf("deleted_at")),
			wantValues: url.Values{
				"filter[fields.deleted_at][exists]": {"false"},
			},
		},
		{
			name:    "membership joins values",
			builder: filter.IsOneOf(filter.AttributeOf("id"), "a", "b", "c"),
			wantValues: url.Values{
				"filter[id][in]": {"a,b,c"},
			},
		},
		{
			name:    "range emits both bounds",
			builder: filter.IsBetween(filter.FieldOf("rating"), 2, 4),
			wantValues: url.Values{
				"filter[fields.rating][gte]": {"2"},
				"filter[fields.rating][lte]": {"4"},
			},
		},
		{
			name: "timestamp range uses rfc3339",
			builder: filter.TimestampBetween(
				filter.AttributeOf("created_at"),
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			),
			wantValues: url.Values{
				"filter[created_at][gte]": {"2024-01-01T00:00:00Z"},
				"filter[created_at][lte]": {"2024-02-01T00:00:00Z"},
			},
		},
		{
			name:    "substring match",
			builder: filter.HasSubstring(filter.FieldOf("body"), "release"),
			wantValues: url.Values{
				"filter[fields.body][contains]": {"release"},
			},
		},
		{
			name:    "membership requires at least one value",
			builder: filter.IsOneOf[string](filter.AttributeOf("id")),
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			values, err := filter.QueryValues(tc.builder.Expression())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.EqualValues(t, tc.wantValues, values)
		})
	}
}

func TestQueryValuesNilExpression(t *testing.T) {
	_, err := filter.QueryValues(nil)
	assert.Error(t, err)
}

func TestBuilderString(t *testing.T) {
	builder := filter.Equals(filter.AttributeOf("type"), "post").
		And(filter.GreaterThan(filter.FieldOf("views"), 10))
	assert.Equal(t, "(('type' eq 'post') and ('fields.views' gt '10'))", builder.String())
	assert.Empty(t, filter.Builder{}.String())
}
