package csvbind

// The constructors below fix the row schema from the handler signature: column
// i of every record is converted by the i-th Column and passed as the i-th
// argument. Records with more fields than declared columns have the extra
// fields ignored; records with fewer get zero values for the missing columns.

func New1[A any](a Column[A], fn func(A), opts ...Option) *Parser {
	checkHandler(fn == nil)
	b := newBinder(a)
	sa := slotOf[A](b, 0)
	b.emit = func() { fn(sa.val) }
	return newParser(b, opts)
}

func New2[A, B any](a Column[A], b Column[B], fn func(A, B), opts ...Option) *Parser {
	checkHandler(fn == nil)
	bd := newBinder(a, b)
	sa, sb := slotOf[A](bd, 0), slotOf[B](bd, 1)
	bd.emit = func() { fn(sa.val, sb.val) }
	return newParser(bd, opts)
}

func New3[A, B, C any](a Column[A], b Column[B], c Column[C], fn func(A, B, C), opts ...Option) *Parser {
	checkHandler(fn == nil)
	bd := newBinder(a, b, c)
	sa, sb, sc := slotOf[A](bd, 0), slotOf[B](bd, 1), slotOf[C](bd, 2)
	bd.emit = func() { fn(sa.val, sb.val, sc.val) }
	return newParser(bd, opts)
}

func New4[A, B, C, D any](a Column[A], b Column[B], c Column[C], d Column[D], fn func(A, B, C, D), opts ...Option) *Parser {
	checkHandler(fn == nil)
	bd := newBinder(a, b, c, d)
	sa, sb, sc, sd := slotOf[A](bd, 0), slotOf[B](bd, 1), slotOf[C](bd, 2), slotOf[D](bd, 3)
	bd.emit = func() { fn(sa.val, sb.val, sc.val, sd.val) }
	return newParser(bd, opts)
}

func New5[A, B, C, D, E any](a Column[A], b Column[B], c Column[C], d Column[D], e Column[E], fn func(A, B, C, D, E), opts ...Option) *Parser {
	checkHandler(fn == nil)
	bd := newBinder(a, b, c, d, e)
	sa, sb, sc, sd, se := slotOf[A](bd, 0), slotOf[B](bd, 1), slotOf[C](bd, 2), slotOf[D](bd, 3), slotOf[E](bd, 4)
	bd.emit = func() { fn(sa.val, sb.val, sc.val, sd.val, se.val) }
	return newParser(bd, opts)
}

func New6[A, B, C, D, E, F any](a Column[A], b Column[B], c Column[C], d Column[D], e Column[E], f Column[F], fn func(A, B, C, D, E, F), opts ...Option) *Parser {
	checkHandler(fn == nil)
	bd := newBinder(a, b, c, d, e, f)
	sa, sb, sc, sd, se, sf := slotOf[A](bd, 0), slotOf[B](bd, 1), slotOf[C](bd, 2), slotOf[D](bd, 3), slotOf[E](bd, 4), slotOf[F](bd, 5)
	bd.emit = func() { fn(sa.val, sb.val, sc.val, sd.val, se.val, sf.val) }
	return newParser(bd, opts)
}

// NewRow builds a parser for a schema whose arity is only known at run time.
// The Row passed to fn is only valid during the call.
func NewRow(schema []ColumnDef, fn func(Row), opts ...Option) *Parser {
	checkHandler(fn == nil)
	bd := newBinder(schema...)
	row := Row{slots: bd.slots}
	bd.emit = func() { fn(row) }
	return newParser(bd, opts)
}

func slotOf[T any](b *binder, i int) *typedSlot[T] {
	return b.slots[i].(*typedSlot[T])
}

func checkHandler(isNil bool) {
	if isNil {
		panic("csvbind: nil handler")
	}
}
