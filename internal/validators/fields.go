package validators

// Field name constants used to specify which rules should be applied.
// They are passed to Validate to restrict validation to a subset of rules
// (field-level scoping). Each request type has its own default set.
const (
	// FieldRequired checks that every mandatory field of the request is present.
	FieldRequired = "required"

	// FieldEmail checks the email address format.
	FieldEmail = "email"

	// FieldPassword applies the registration password policy.
	FieldPassword = "password"

	// FieldStrongPassword applies the strong password policy used on change.
	FieldStrongPassword = "strong_password"

	// FieldBio checks the profile bio length.
	FieldBio = "bio"

	// FieldQuantity checks that a provided quantity is not negative.
	FieldQuantity = "quantity"

	// FieldPrice checks that a provided price is not negative.
	FieldPrice = "price"

	// FieldAnyUpdate checks that a partial update carries at least one value.
	FieldAnyUpdate = "any_update"

	// FieldImageType checks the MIME type of an uploaded image.
	FieldImageType = "image_type"

	// FieldImageSize checks the size of an uploaded image.
	FieldImageSize = "image_size"
)
