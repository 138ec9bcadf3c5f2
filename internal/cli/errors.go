package cli

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	setInvalidCode    = "QUESTION_SET_INVALID"
	configInvalidCode = "CONFIG_INVALID"
	readDirFailedCode = "DIRECTORY_READ_FAILED"
	writeFailedCode   = "ENTRY_WRITE_FAILED"
	renameFailedCode  = "ENTRY_RENAME_FAILED"
)

func wrapSetError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "question set is invalid").
		WithTextCode(setInvalidCode)
}

func wrapConfigError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "config is invalid").
		WithTextCode(configInvalidCode)
}

func wrapReadDirError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "directory could not be read").
		WithTextCode(readDirFailedCode)
}

func wrapWriteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "question file could not be written").
		WithTextCode(writeFailedCode)
}

func wrapRenameError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "markdown file could not be renamed").
		WithTextCode(renameFailedCode)
}
