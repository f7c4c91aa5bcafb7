// Package formula implements the derivation expression language used to
// compute dependent columns (sales, expenses, cash, ...) from the columns of
// an iteration table.
//
// The language is a small, aggregate-free SELECT dialect:
//
//	select demand, price, demand*price as sales, cost,
//	       demand*cost as expenses, (demand*price)-(demand*cost) as cash
//	from df
//
// Grammar (keywords are case-insensitive):
//
//	query   := SELECT item {"," item} FROM ident [";"]
//	item    := "*" | expr [AS ident]
//	expr    := term {("+" | "-") term}
//	term    := unary {("*" | "/") unary}
//	unary   := ("-" | "+") unary | primary
//	primary := number | ident | "(" expr ")"
//
// Identifiers may be double-quoted ("net cash"). Column references resolve
// case-insensitively when no column matches exactly, so "Cash" reads the
// cash column; output names keep the spelling written in the query. The FROM target only names
// the iteration table and is not interpreted. Evaluation is row-wise
// arithmetic over whole columns; division follows IEEE-754, so x/0 yields
// ±Inf and 0/0 yields NaN without error. Aliases are not visible to sibling
// items, as in SQL.
//
// A parsed Query is immutable and safe for concurrent Evaluate calls.
package formula
