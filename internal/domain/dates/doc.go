// Package dates classifies the numeric and textual dates found on identity
// documents.
//
// A date such as 03/04/1990 reads differently in the United States and in
// Latin America. Parse resolves the field order when one field can only be a
// day (it exceeds 12) or when a country hint is available, and otherwise
// reports the value as ambiguous without guessing. The original string is
// always kept verbatim so callers can display exactly what was printed on the
// document.
package dates
