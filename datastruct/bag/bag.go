package bag

// Bag 无序、允许重复的只增集合
type Bag interface {
	Add(val interface{})
	AddMany(vals ...interface{})
	String() string
}

// addEach 逐个调用 add，批量插入必须经过调用方自己的 Add
func addEach(add func(val interface{}), vals []interface{}) {
	for _, val := range vals {
		add(val)
	}
}
