package auth

import "strings"

// unsigned keeps the header and payload of token and drops its signature.
func unsigned(token string) string {
	return token[:strings.LastIndex(token, ".")+1]
}

// Tokens signed with "jwt_secret" for {"username":"thedude","name":"Mr. Lebowski"}.
const (
	fixtureSecret = "jwt_secret"

	// exp 4658591713 (2117).
	validToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJkYXRhIjp7InVzZXJuYW1lIjoidGhlZHVkZSIsIm5" +
		"hbWUiOiJNci4gTGVib3dza2kifSwiZXhwIjo0NjU4NTkxNzEzLCJpYXQiOjE1MDQ5OTE3MTN9.nZqc6O" +
		"SdccIx4NXovqqHW5iXAyIsPhEkT2SiwyW1LvU"

	// exp 1504991821 (2017).
	expiredToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJkYXRhIjp7InVzZXJuYW1lIjoidGhlZHVkZSIsIm5" +
		"hbWUiOiJNci4gTGVib3dza2kifSwiZXhwIjoxNTA0OTkxODIxLCJpYXQiOjE1MDQ5OTE4MjJ9.llUQYi" +
		"eU1sdd-0RAL6IbqJWT4OkuwPDugumFq_APJPY"

	// expiredToken with the last signature character changed.
	badSignatureToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJkYXRhIjp7InVzZXJuYW1lIjoidGhlZHVkZSIsIm5" +
		"hbWUiOiJNci4gTGVib3dza2kifSwiZXhwIjoxNTA0OTkxODIxLCJpYXQiOjE1MDQ5OTE4MjJ9.llUQYi" +
		"eU1sdd-0RAL6IbqJWT4OkuwPDugumFq_APJP1"

	// expiredToken with a corrupted header.
	corruptHeaderToken = "e1JhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJkYXRhIjp7InVzZXJuYW1lIjoidGhlZHVkZSIsIm5" +
		"hbWUiOiJNci4gTGVib3dza2kifSwiZXhwIjoxNTA0OTkxODIxLCJpYXQiOjE1MDQ5OTE4MjJ9.llUQYi" +
		"eU1sdd-0RAL6IbqJWT4OkuwPDugumFq_APJPY"

	// corruptHeaderToken without its signature segment.
	twoSegmentToken = "e1JhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJkYXRhIjp7InVzZXJuYW1lIjoidGhlZHVkZSIsIm5" +
		"hbWUiOiJNci4gTGVib3dza2kifSwiZXhwIjoxNTA0OTkxODIxLCJpYXQiOjE1MDQ5OTE4MjJ9"
)
