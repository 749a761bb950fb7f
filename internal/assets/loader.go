package assets

// AssetLoader defines the contract for loading stylesheets and templates.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a template by name (without .tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// DefaultStyleName is the name of the built-in vertical-writing style.
const DefaultStyleName = "vertical"

// Template names used by the EPUB writer.
const (
	TemplateChapter = "chapter" // chapter XHTML page
	TemplateCover   = "cover"   // cover XHTML page
	TemplateNav     = "nav"     // EPUB 3 navigation document
	TemplatePackage = "package" // OPF package document
	TemplateNCX     = "ncx"     // NCX table of contents
)

// TemplateNames lists every template a complete asset set provides.
var TemplateNames = []string{TemplateChapter, TemplateCover, TemplateNav, TemplatePackage, TemplateNCX}
