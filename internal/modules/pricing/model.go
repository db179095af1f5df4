// README: Historical route observation used to fit the price model.
package pricing

// Route is one historical price observation between two regions. Region
// names are stored in their canonical Cyrillic form; Price is in thousands
// of so'm, the unit the model is trained in.
type Route struct {
	From  string
	To    string
	Price float64
}
