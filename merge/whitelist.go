package merge

import "slices"

// nativeProperties lists the style properties a native rule set may hold.
// It must stay sorted: IsAllowedProperty binary-searches it.
var nativeProperties = []string{
	"alignContent",
	"alignItems",
	"alignSelf",
	"aspectRatio",
	"backfaceVisibility",
	"backgroundColor",
	"borderBottomColor",
	"borderBottomLeftRadius",
	"borderBottomRightRadius",
	"borderBottomWidth",
	"borderColor",
	"borderLeftColor",
	"borderLeftWidth",
	"borderRadius",
	"borderRightColor",
	"borderRightWidth",
	"borderStyle",
	"borderTopColor",
	"borderTopLeftRadius",
	"borderTopRightRadius",
	"borderTopWidth",
	"borderWidth",
	"bottom",
	"color",
	"decomposedMatrix",
	"direction",
	"display",
	"elevation",
	"flex",
	"flexBasis",
	"flexDirection",
	"flexGrow",
	"flexShrink",
	"flexWrap",
	"fontFamily",
	"fontSize",
	"fontStyle",
	"fontVariant",
	"fontWeight",
	"height",
	"includeFontPadding",
	"justifyContent",
	"left",
	"letterSpacing",
	"lineHeight",
	"margin",
	"marginBottom",
	"marginHorizontal",
	"marginLeft",
	"marginRight",
	"marginTop",
	"marginVertical",
	"maxHeight",
	"maxWidth",
	"minHeight",
	"minWidth",
	"opacity",
	"overflow",
	"overlayColor",
	"padding",
	"paddingBottom",
	"paddingHorizontal",
	"paddingLeft",
	"paddingRight",
	"paddingTop",
	"paddingVertical",
	"position",
	"resizeMode",
	"right",
	"rotation",
	"scaleX",
	"scaleY",
	"shadowColor",
	"shadowOffset",
	"shadowOpacity",
	"shadowRadius",
	"textAlign",
	"textAlignVertical",
	"textDecorationColor",
	"textDecorationLine",
	"textDecorationStyle",
	"textShadowColor",
	"textShadowOffset",
	"textShadowRadius",
	"tintColor",
	"top",
	"transform",
	"transformMatrix",
	"translateX",
	"translateY",
	"width",
	"writingDirection",
	"zIndex",
}

// IsAllowedProperty reports whether name is a native style property.
func IsAllowedProperty(name string) bool {
	_, found := slices.BinarySearch(nativeProperties, name)
	return found
}

// AllowedProperties returns the sorted native property names.
func AllowedProperties() []string {
	return slices.Clone(nativeProperties)
}
