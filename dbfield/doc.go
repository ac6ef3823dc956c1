// Package dbfield implements the storage type for external URLs.
//
// An ExternalURL is a named string column of at most 2083 characters. Values
// are normalized when they are saved into a record and read back verbatim, so
// a stored URL round trips without drift:
//
//	col := dbfield.New("Website")
//	col.SetValue("www.example.com/")
//	if err := col.SaveInto(ctx, record, nil); err != nil {
//		return err
//	}
//	col.Value // "https://www.example.com"
//
// The accessor methods (Domain, DomainShort, NoWWW, Path, Nice, Icon) derive
// display values from the stored string and never modify it.
package dbfield
