// Package codec converts typed result-set rows to and from a
// self-describing XML document.
//
// The encoder always writes element form with inline type metadata:
//
//	<Table>
//	  <Row><ID type="Integer">1</ID><Name type="String">Test1</Name></Row>
//	</Table>
//
// The parser additionally accepts attribute form, <Row ID="1" Name="Test1"/>,
// and documents without metadata. Which form a document uses is decided once
// from its first row. Untagged columns get their type from the first row's
// value (see [Infer]); a column whose first value is atypical will be typed
// after that value, and later rows that do not fit fail with a
// [TypeCoercionError].
package codec
