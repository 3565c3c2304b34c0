package bag

import (
	"fmt"
	"strings"
)

const renderPrefix = "Bag: "

// SimpleBag 按插入顺序保存元素，非线程安全
type SimpleBag struct {
	items []interface{}
}

var _ Bag = (*SimpleBag)(nil)

func MakeSimpleBag(vals ...interface{}) *SimpleBag {
	bag := &SimpleBag{
		items: make([]interface{}, 0, len(vals)),
	}

	bag.AddMany(vals...)

	return bag
}

func (bag *SimpleBag) Add(val interface{}) {
	bag.items = append(bag.items, val)
}

func (bag *SimpleBag) AddMany(vals ...interface{}) {
	addEach(bag.Add, vals)
}

// String 形如 "Bag: a,b,c"，空 bag 为 "Bag: "
func (bag *SimpleBag) String() string {
	var builder strings.Builder
	builder.WriteString(renderPrefix)

	for i, item := range bag.items {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(fmt.Sprint(item))
	}

	return builder.String()
}
