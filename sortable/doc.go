// Package sortable defines the Sortable interface (equality plus a strict
// less-than) and wrapper types that give primitives that interface.
//
// compare.Compare recognizes Sortable values by their methods, so anything
// implementing it is ordered by its own LessThan/Equals at any depth:
//
//	compare.Compare([]sortable.Int{1, 5}, []sortable.Int{1, 7}) // -1
//
// The Float64 wrapper uses the library's total float order, so NaN equals
// NaN and sorts after +Inf, and -0 sorts before +0. Fold compares strings
// case-insensitively.
//
// To create a custom sortable type, implement both methods:
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Equals(o Version) bool { return v == o }
//
//	func (v Version) LessThan(o Version) bool {
//	    if v.Major != o.Major {
//	        return v.Major < o.Major
//	    }
//	    return v.Minor < o.Minor
//	}
package sortable
