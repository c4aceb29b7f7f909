// Package xmlbuilder provides a write-only model for building XML
// documents in memory and writing them out as indented UTF-8 text.
//
// Use New to create elements, give them attributes and either text or
// child elements, then call Write on the root element to produce the
// document:
//
//	person := xmlbuilder.New("person")
//	person.AddAttribute("id", 232)
//	name := xmlbuilder.New("name")
//	name.AddText("Joe Schmoe")
//	person.AddChild(name)
//	person.AddChild(xmlbuilder.New("hobbies"))
//
//	if err := person.Write(os.Stdout); err != nil {
//		...
//	}
//
// produces
//
//	<?xml version = "1.0" encoding = "UTF-8"?>
//	<person id="232">
//		<name>Joe Schmoe</name>
//		<hobbies />
//	</person>
//
// There is no parser and no query API: a tree is built once, bottom-up,
// and serialized. Attribute values and text are escaped at the moment
// they are added, never at write time.
package xmlbuilder

// Version is the version of this library.
const Version = "1.0.0"
