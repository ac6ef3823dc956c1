// Package formfield implements the form field used to enter, validate and save
// external URLs.
//
// Every value set on a Field is normalized with the field's configuration, so
// the field always holds either "" or a canonical URL. Validation runs
// separately, on submit, against that normalized value:
//
//	f := formfield.New("Website", "Website")
//	f.SetValue("user:pw@www.example.com/")
//	f.Value() // "https://www.example.com"
//
//	var errs formfield.ErrorList
//	if !f.Validate(&errs) {
//		// errs holds one FieldError for "Website"
//	}
//
// Each Field owns a private copy of its configuration; changing it with
// SetConfig never affects other fields.
package formfield
