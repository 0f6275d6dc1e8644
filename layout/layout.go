package layout

import "slices"

type Point struct {
	X, Y int
}

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex {
	return &Flex{Dir: Y, Items: items}
}

func Row(items ...FlexItem) *Flex {
	return &Flex{Dir: X, Items: items}
}

func (f *Flex) StartLayouting(width, height int) {
	f.Layout(Dimensions{Origin: Point{X: 0, Y: 0}, Width: width, Height: height})
}

// Layout sizes the items along the main axis and hands every item that
// fits its Dimensions. Items are placed in the order they are listed.
//
// Every item first gets its minimum. An item whose minimum no longer
// fits is skipped and its box is not called. The remaining space is then
// shared out evenly, each item capped at its maximum.
func (f *Flex) Layout(dims Dimensions) {
	total := dims.Height
	if f.Dir == X {
		total = dims.Width
	}

	kept := f.fitting(total)
	sizes := distribute(kept, total)

	orig := dims.Origin
	resolved := make([]Dimensions, len(kept))
	for i, item := range kept {
		var dim Dimensions
		if f.Dir == Y {
			dim = Dimensions{orig, dims.Width, sizes[i]}
			orig = Point{orig.X, orig.Y + sizes[i]}
		} else {
			dim = Dimensions{orig, sizes[i], dims.Height}
			orig = Point{orig.X + sizes[i], orig.Y}
		}
		resolved[i] = dim
		if item.Box != nil {
			item.Box(dim)
		}
	}

	// recursively layout nested flex items
	for i, item := range kept {
		if item.Flex != nil {
			item.Flex.Layout(resolved[i])
		}
	}
}

type sized struct {
	FlexItem
	min, max int
}

func (f *Flex) fitting(total int) []sized {
	var kept []sized
	used := 0
	for _, item := range f.Items {
		lo := item.Size.Min.toAbs(total)
		hi := max(lo, item.Size.Max.toAbs(total))
		if used+lo > total {
			continue
		}
		used += lo
		kept = append(kept, sized{item, lo, hi})
	}
	return kept
}

func distribute(items []sized, total int) []int {
	sizes := make([]int, len(items))
	remaining := total
	for i, item := range items {
		sizes[i] = item.min
		remaining -= item.min
	}

	// fill the items with the least room first, so the space they cannot
	// take is shared among the others
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return (items[a].max - items[a].min) - (items[b].max - items[b].min)
	})
	for n, i := range order {
		share := remaining / (len(order) - n)
		give := min(share, items[i].max-items[i].min)
		sizes[i] += give
		remaining -= give
	}

	// integer division leftovers go to the first items with room
	for i := range items {
		if remaining == 0 {
			break
		}
		give := min(remaining, items[i].max-sizes[i])
		sizes[i] += give
		remaining -= give
	}
	return sizes
}

type FlexItem struct {
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	return FlexItem{Box: box, Size: size, Flex: flex}
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint {
	return Constraint{Min: size, Max: size}
}

func Max(size Size) Constraint {
	return Constraint{Min: Abs(0), Max: size}
}

type Size struct {
	abs int     // absolute size
	rel float64 // [0, 1]
}

func Abs(abs int) Size {
	return Size{abs: abs}
}

func Rel(rel float64) Size {
	return Size{rel: rel}
}

func (s Size) toAbs(size int) int {
	if s.abs != 0 {
		return s.abs
	}

	return int(s.rel * float64(size))
}

type Direction int

const (
	Y Direction = iota
	X
)

// Dimensions of a resolved box
type Dimensions struct {
	Origin        Point // TL corner
	Width, Height int
}

func (d Dimensions) Contains(x, y int) bool {
	return x >= d.Origin.X && x < d.Origin.X+d.Width && y >= d.Origin.Y && y < d.Origin.Y+d.Height
}

func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}
