package components

import "github.com/yohamta/donburi"

// TextData is drawn by the text render pass at the entity's transform.
// FontSize is mutable at runtime (the popup transition animates it).
type TextData struct {
	Content  string
	FontSize float64
}

var Text = donburi.NewComponentType[TextData]()
