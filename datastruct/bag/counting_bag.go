package bag

// CountingBag 在 SimpleBag 的基础上记录插入次数
type CountingBag struct {
	bag   *SimpleBag
	count int
}

var _ Bag = (*CountingBag)(nil)

func MakeCountingBag(vals ...interface{}) *CountingBag {
	cbag := &CountingBag{
		bag: MakeSimpleBag(),
	}

	cbag.AddMany(vals...)

	return cbag
}

func (cbag *CountingBag) Add(val interface{}) {
	cbag.bag.Add(val)
	cbag.count++
}

// AddMany 必须走 cbag.Add 而不是内部 bag 的 Add，否则计数会漏掉
func (cbag *CountingBag) AddMany(vals ...interface{}) {
	addEach(cbag.Add, vals)
}

// Size 返回插入过的元素个数
func (cbag *CountingBag) Size() int {
	return cbag.count
}

func (cbag *CountingBag) String() string {
	return cbag.bag.String()
}
