package types

// Keys is the set of directions currently held down, sampled once per tick.
type Keys uint8

// Press returns k with d added.
func (k Keys) Press(d Direction) Keys {
	if d == None {
		return k
	}
	return k | 1<<uint(d)
}

func (k Keys) Pressed(d Direction) bool {
	return d != None && k&(1<<uint(d)) != 0
}

// Candidates lists the held directions in Priority order.
func (k Keys) Candidates() []Direction {
	var out []Direction
	for _, d := range Priority {
		if k.Pressed(d) {
			out = append(out, d)
		}
	}
	return out
}

// KeysOf builds a key set from the given directions.
func KeysOf(dirs ...Direction) Keys {
	var k Keys
	for _, d := range dirs {
		k = k.Press(d)
	}
	return k
}
