// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import "vagas/cli/internal/notify"

// Notifications produced by account operations.
var (
	MsgMissingSignInFields = notify.Message{Level: notify.LevelError, Title: "Error", Body: "Fill in all fields: email and password"}
	MsgInvalidCredentials  = notify.Message{Level: notify.LevelError, Title: "Error", Body: "Incorrect email or password"}
	MsgConnectivity        = notify.Message{Level: notify.LevelError, Title: "Error", Body: "Could not connect to the API"}
	MsgSessionNotSaved     = notify.Message{Level: notify.LevelError, Title: "Error", Body: "Could not save your session on this device"}

	MsgUpdateSuccess = notify.Message{Level: notify.LevelSuccess, Title: "Success", Body: "Profile updated successfully"}
	MsgUpdateFailure = notify.Message{Level: notify.LevelError, Title: "Error", Body: "Could not update your profile"}

	MsgMissingCreateFields = notify.Message{Level: notify.LevelError, Title: "Error", Body: "Fill in all fields: name, email and password"}
	MsgDuplicateEmail      = notify.Message{Level: notify.LevelError, Title: "Error", Body: "Email already registered!"}
	MsgCreateSuccess       = notify.Message{Level: notify.LevelSuccess, Title: "Success", Body: "Account created successfully!"}
	MsgCreateFailure       = notify.Message{Level: notify.LevelError, Title: "Error", Body: "There was a problem creating the account."}
)

// PromptSignOut asks before the session is discarded.
var PromptSignOut = notify.Prompt{
	Title:   "Attention!",
	Body:    "Are you sure you want to sign out?",
	Cancel:  "Cancel",
	Confirm: "Yes",
}
