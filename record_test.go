// SPDX-License-Identifier: MIT
package flattree

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromRecords(t *testing.T) {
	type args struct {
		records               []Record
		identifierField       string
		parentIdentifierField string
		options               []Option
	}

	tests := []struct {
		name      string
		args      args
		wantRoots []any
		wantErr   error
	}{
		{
			name:      "nil parent marks a root",
			args:      args{[]Record{{"id": "a", "parent": nil}, {"id": "b", "parent": "a"}}, "id", "parent", nil},
			wantRoots: []any{"a"},
		},
		{
			name:    "empty identifier field",
			args:    args{fixtureRecords(), "", parentField, nil},
			wantErr: ErrEmptyFieldName,
		},
		{
			name:    "empty parent field",
			args:    args{fixtureRecords(), idField, "", nil},
			wantErr: ErrEmptyFieldName,
		},
		{
			name:    "missing identifier",
			args:    args{[]Record{{"id": 1}, {"name": "x"}}, "id", "parent", nil},
			wantErr: ErrMissingIdentifier,
		},
		{
			name:    "uncomparable identifier",
			args:    args{[]Record{{"id": []int{1}}}, "id", "parent", nil},
			wantErr: ErrUncomparableIdentifier,
		},
		{
			name:    "uncomparable parent",
			args:    args{[]Record{{"id": 1, "parent": map[string]any{}}}, "id", "parent", nil},
			wantErr: ErrUncomparableIdentifier,
		},
		{
			name:    "orphan",
			args:    args{[]Record{{"id": 1, "parent": 2}}, "id", "parent", nil},
			wantErr: ErrOrphanNode,
		},
		{
			name:      "orphan promoted",
			args:      args{[]Record{{"id": 1, "parent": 2}, {"id": 3}}, "id", "parent", []Option{WithOrphanPolicy(PromoteOrphans)}},
			wantRoots: []any{1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, err := NewFromRecords(tt.args.records, tt.args.identifierField, tt.args.parentIdentifierField, tt.args.options...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error = %v, wantErr %v", err, tt.wantErr)
				assert.True(t, errors.Is(err, ErrBuildTree))
				assert.Nil(t, gotT)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRoots, keys(gotT, gotT.Roots()))
		})
	}
}

func TestNewFromRecords_JSON(t *testing.T) {
	src := `[
		{"code": "eng", "name": "Engineering"},
		{"code": "ops", "name": "Operations", "parent": null},
		{"code": "web", "name": "Web", "parent": "eng"},
		{"code": "infra", "name": "Infrastructure", "parent": "eng"},
		{"code": "sre", "name": "SRE", "parent": "infra"}
	]`

	var records []Record
	require.NoError(t, json.Unmarshal([]byte(src), &records))

	tree, err := NewFromRecords(records, "code", "parent")
	require.NoError(t, err)

	assert.Equal(t, "eng(web,infra(sre)),ops", tree.String())

	node, ok := tree.Find(Record{"code": "sre"})
	require.True(t, ok)
	name, err := node.Record().GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "SRE", name)
}

func TestRecord_Getters(t *testing.T) {
	r := Record{
		"name":   "root",
		"int":    4,
		"int64":  int64(5),
		"float":  float64(6),
		"active": true,
		"nil":    nil,
	}

	assert.True(t, r.Has("name"))
	assert.False(t, r.Has("nil"))
	assert.False(t, r.Has("missing"))

	str, err := r.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "root", str)

	_, err = r.GetString("int")
	assert.True(t, errors.Is(err, ErrInvalidType))

	for key, want := range map[string]int{"int": 4, "int64": 5, "float": 6, "missing": 0} {
		got, err := r.GetInt(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	_, err = r.GetInt("name")
	assert.True(t, errors.Is(err, ErrInvalidType))

	active, err := r.GetBool("active")
	require.NoError(t, err)
	assert.True(t, active)

	_, err = r.GetBool("name")
	assert.True(t, errors.Is(err, ErrInvalidType))

	r.Merge(Record{"name": "renamed", "extra": 1})
	assert.Equal(t, "renamed", r["name"])
	assert.Equal(t, 1, r["extra"])
}
