// Package timeseries provides the observation storage used by the
// bootstrap engine.
//
// A Series holds an irregularly sampled record as parallel age and value
// slices, sorted ascending by age at construction. Duplicate ages are
// allowed; they represent distinct physical samples with the same nominal
// age. All downstream window selection reduces to range queries over the
// sorted ages.
//
// # Creating a Series
//
// From slices:
//
//	s, err := timeseries.New(ages, values)
//
// From a CSV file with "age" and "value" columns:
//
//	s, err := timeseries.LoadCSV("record.csv", nil)
//
// Custom column names:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.AgeColumn = "age_ma"
//	opts.ValueColumn = "d13c"
//	s, err := timeseries.LoadCSV("record.csv", opts)
//
// # Range Queries
//
// ValuesBetween returns the values in a closed age interval, which is
// exactly the membership rule used by the window package:
//
//	members := s.ValuesBetween(center-width/2, center+width/2)
package timeseries
