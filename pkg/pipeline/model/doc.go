// Package model provides the data structures shared by the pipeline package and its options.
// It defines the description of a job, the description of a run and the interface every
// pipeline option implements.
package model
