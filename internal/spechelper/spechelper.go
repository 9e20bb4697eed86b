// Package spechelper holds fixtures shared by the sorting specifications.
package spechelper

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/testcase/random"
)

// Record is an element with a sort key and an identity tag.
// Records are ordered by Key only, so records with an equal Key are equivalent elements
// and the Tag tells them apart when checking stability.
type Record struct {
	Key int
	Tag string
}

func (r Record) String() string { return fmt.Sprintf("%d/%s", r.Key, r.Tag) }

// Records is a sorter.Sequence of Record values ordered by their Key.
type Records []Record

func (rs Records) Len() int           { return len(rs) }
func (rs Records) Less(i, j int) bool { return rs[i].Key < rs[j].Key }
func (rs Records) Swap(i, j int)      { rs[i], rs[j] = rs[j], rs[i] }

// Tags returns the tags of the records in their current order.
func (rs Records) Tags() []string {
	tags := make([]string, 0, len(rs))
	for _, r := range rs {
		tags = append(tags, r.Tag)
	}
	return tags
}

// Keys returns the keys of the records in their current order.
func (rs Records) Keys() []int {
	keys := make([]int, 0, len(rs))
	for _, r := range rs {
		keys = append(keys, r.Key)
	}
	return keys
}

// Clone returns an independent copy of the records.
func (rs Records) Clone() Records {
	return append(Records(nil), rs...)
}

// NewRecords makes a Record for each key, tagged with a unique identifier.
func NewRecords(keys ...int) Records {
	rs := make(Records, 0, len(keys))
	for _, key := range keys {
		rs = append(rs, Record{Key: key, Tag: uuid.NewV4().String()})
	}
	return rs
}

// RandomRecords makes n records whose keys are drawn from a small key space,
// so the result is likely to contain many equal keys.
func RandomRecords(rnd *random.Random, n int) Records {
	keySpace := n/4 + 1
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rnd.IntN(keySpace)
	}
	return NewRecords(keys...)
}

// RandomInts makes n integers in the [-n, n] range.
func RandomInts(rnd *random.Random, n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = rnd.IntBetween(-n, n)
	}
	return vs
}

// Ascending makes the [1..n] sequence.
func Ascending(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i + 1
	}
	return vs
}

// Descending makes the [n..1] sequence.
func Descending(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = n - i
	}
	return vs
}

// wordsMutex guards the package level source of randomdata while Words reseeds it.
var wordsMutex sync.Mutex

// Words makes n human readable words.
// The words derive from rnd, so a failing case replays with the same testcase seed.
func Words(rnd *random.Random, n int) []string {
	wordsMutex.Lock()
	defer wordsMutex.Unlock()
	randomdata.CustomRand(rand.New(rand.NewSource(int64(rnd.Int()))))

	vs := make([]string, n)
	for i := range vs {
		switch i % 3 {
		case 0:
			vs[i] = randomdata.SillyName()
		case 1:
			vs[i] = randomdata.Noun()
		default:
			vs[i] = randomdata.Adjective()
		}
	}
	return vs
}
