package menu

// moveCursorUp moves the cursor to the previous item, wrapping to the last.
func (m *Machine) moveCursorUp() bool {
	n := m.items.Len()
	old := m.cursor
	m.cursor = (m.cursor - 1 + n) % n
	return old != m.cursor
}

// moveCursorDown moves the cursor to the next item, wrapping to the first.
func (m *Machine) moveCursorDown() bool {
	n := m.items.Len()
	old := m.cursor
	m.cursor = (m.cursor + 1) % n
	return old != m.cursor
}

// moveCursorHome moves the cursor to the first item.
func (m *Machine) moveCursorHome() bool {
	old := m.cursor
	m.cursor = 0
	return old != m.cursor
}

// moveCursorEnd moves the cursor to the last item.
func (m *Machine) moveCursorEnd() bool {
	old := m.cursor
	m.cursor = m.items.Len() - 1
	return old != m.cursor
}
