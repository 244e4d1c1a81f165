package site

// Gallery lists the pictures of the gallery section.
var Gallery = []GalleryImage{
	{Src: "img/photo1.jpg", Alt: "Il bancone"},
	{Src: "img/photo2.jpg", Alt: "Caffè espresso"},
	{Src: "img/photo3.jpg", Alt: "Aperitivo in terrazza"},
	{Src: "img/photo4.jpg", Alt: "Cocktail della casa"},
	{Src: "img/photo5.jpg", Alt: "La sala"},
	{Src: "img/photo6.jpg", Alt: "Panini appena fatti"},
}
