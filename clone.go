package tidy

// Cloner allows types to provide deep copy logic.
// Processor.Normalized uses it to copy a value before normalizing the copy.
//
// For simple value types with no pointers, slices, or maps, Clone can simply return
// the receiver value:
//
//	func (u User) Clone() User { return u }
//
// For types with pointer fields, copy the pointees too:
//
//	func (u User) Clone() User {
//	    if u.Nickname != nil {
//	        n := *u.Nickname
//	        u.Nickname = &n
//	    }
//	    return u
//	}
type Cloner[T any] interface {
	Clone() T
}
