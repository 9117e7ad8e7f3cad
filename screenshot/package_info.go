// Package screenshot captures browser screenshots and stores them in the report
// output directory. Capture and storage are decoupled: captured images are pushed
// onto a sequencing queue and written out by a background writer, so that slow disk
// writes never block a running test, while files still appear in capture order.
package screenshot
