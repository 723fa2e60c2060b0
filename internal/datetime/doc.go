// Package datetime converts due-date literals into the task service's wire
// format.
//
// Literals without a UTC marker are treated as local time and stamped with a
// fixed offset chosen by calendar window: March 8 through November 1
// (inclusive) of any year gets the daylight offset (-0700), everything else
// the standard offset (-0800). This reproduces the predecessor's fixed-date
// approximation of the US Pacific DST rule; the true transitions (second
// Sunday in March, first Sunday in November) shift year to year and can
// differ from this window by up to six days. The approximation is kept
// deliberately: stored timestamps depend on it.
package datetime
