package models

// builtinContacts ship with the binary. Their ids are stable and they are
// never written to storage.
var builtinContacts = []Contact{
	{ID: "builtin-1", Name: "Leanne Graham", Email: "leanne@april.biz", Phone: "+1 770-736-8031"},
	{ID: "builtin-2", Name: "Ervin Howell", Email: "ervin@melissa.tv", Phone: "+1 010-692-6593"},
	{ID: "builtin-3", Name: "Clementine Bauch", Email: "nathan@yesenia.net", Phone: "+1 463-123-4447"},
	{ID: "builtin-4", Name: "Patricia Lebsack", Email: "julianne@kory.org", Phone: "+1 493-170-9623"},
	{ID: "builtin-5", Name: "Chelsey Dietrich", Email: "lucio@annie.ca", Phone: "+1 254-954-1289"},
	{ID: "builtin-6", Name: "Dennis Schulist", Email: "karley@jasper.info", Phone: "+1 477-935-8478"},
}

// BuiltinContacts returns a copy of the seed set in display order.
func BuiltinContacts() []Contact {
	out := make([]Contact, len(builtinContacts))
	copy(out, builtinContacts)
	return out
}
