// SPDX-License-Identifier: MIT
package flattree_test

import (
	"fmt"

	"gitlab.com/fisherprime/flattree"
)

func ExampleNewFromRecords() {
	records := []flattree.Record{
		{"id": 3}, {"id": 1}, {"id": 99}, {"id": 76},
		{"id": 9, "parent": 3}, {"id": 11, "parent": 9},
		{"id": 54, "parent": 11}, {"id": 23, "parent": 11},
		{"id": 85, "parent": 99}, {"id": 13, "parent": 99},
	}

	tree, err := flattree.NewFromRecords(records, "id", "parent")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(tree.Roots()), len(tree.GetChildren(flattree.Record{"id": 99})))
	fmt.Println(tree.Remove(flattree.Record{"id": 3}))

	_, ok := tree.Find(flattree.Record{"id": 23})
	fmt.Println(ok, tree)
	// Output:
	// 4 2
	// true
	// false 1,99(85,13),76
}

type employee struct {
	ID      string
	Manager string
}

func ExampleNew() {
	staff := []employee{
		{ID: "ceo"},
		{ID: "cto", Manager: "ceo"},
		{ID: "dev", Manager: "cto"},
	}

	tree, err := flattree.New(staff,
		func(e employee) string { return e.ID },
		func(e employee) (string, bool) { return e.Manager, e.Manager != "" },
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	if _, err = tree.AddChild(employee{ID: "cfo", Manager: "ceo"}, employee{ID: "ceo"}); err != nil {
		fmt.Println(err)
		return
	}

	tree.Traverse(func(n *flattree.Node[employee]) bool {
		fmt.Println(n.Record().ID)
		return n.Record().ID == "dev"
	})
	// Output:
	// ceo
	// cto
	// dev
}
