//go:build mage

package main

import (
	"archive/zip"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var LINUX_BIN = "sprig-toast"
var LINUX_ARCHIVE = "sprig-toast-linux.tar.xz"
var WINDOWS_BIN = "sprig-toast.exe"
var WINDOWS_ARCHIVE = "sprig-toast-windows.zip"
var ANDROID_APK = "sprig-toast.apk"
var IOS_APP = "sprig-toast.ipa"
var APPID = "chat.arbor.SprigToast"

var Aliases = map[string]interface{}{
	"c": Clean,
	"l": Linux,
	"w": Windows,
	"a": Android,
	"t": Test,
}

func goFlags(platform string) string {
	return "-ldflags=-X=main.Version=" + embeddedVersion() + " " + platformFlags(platform)
}

func platformFlags(platform string) string {
	switch platform {
	case "windows":
		return "-ldflags=-H=windowsgui"
	default:
		return ""
	}
}

func embeddedVersion() string {
	gitVersion, err := sh.Output("git", "describe", "--tags", "--dirty", "--always")
	if err != nil {
		return "git"
	}
	return gitVersion
}

// Build all binary targets
func All() {
	mg.Deps(Linux, Windows, Android)
}

// Run the unit tests of every package that does not need a window.
func Test() error {
	return sh.RunV("go", "test", "./anim/...", "./queue/...", "./toast/...", "./core/...", "./widget/...", "./surface/...", "./icons/...")
}

// Build for specific platforms with a given binary name.
func BuildFor(platform, binary string) error {
	_, err := sh.Exec(map[string]string{"GOOS": platform, "GOFLAGS": goFlags(platform)},
		os.Stdout, os.Stderr, "go", "build", "-o", binary, ".")
	return err
}

// Build with gogio for a mobile or windows target.
func gogio(target, out string) error {
	_, err := sh.Exec(map[string]string{"GOFLAGS": goFlags(target)},
		os.Stdout, os.Stderr, "go", "run", "gioui.org/cmd/gogio", "-x", "-target", target, "-appid", APPID, "-o", out, ".")
	return err
}

// Build Linux
func LinuxBin() error {
	return BuildFor("linux", LINUX_BIN)
}

// Build Linux and archive/compress binary
func Linux() error {
	mg.Deps(LinuxBin)
	return sh.Run("tar", "-cJf", LINUX_ARCHIVE, LINUX_BIN)
}

// Build Windows
func WindowsBin() error {
	return gogio("windows", WINDOWS_BIN)
}

// Build Windows binary and zip it up
func Windows() error {
	mg.Deps(WindowsBin)
	file, err := os.Create(WINDOWS_ARCHIVE)
	if err != nil {
		return err
	}
	defer file.Close()
	zipWriter := zip.NewWriter(file)
	f, err := zipWriter.Create(WINDOWS_BIN)
	if err != nil {
		return err
	}
	body, err := os.ReadFile(WINDOWS_BIN)
	if err != nil {
		return err
	}
	if _, err = f.Write(body); err != nil {
		return err
	}
	return zipWriter.Close()
}

// Build Android APK
func Android() error {
	return gogio("android", ANDROID_APK)
}

// Build iOS app (requires macOS and Xcode)
func IOS() error {
	return gogio("ios", IOS_APP)
}

// Clean up
func Clean() error {
	return sh.Run("rm", "-rf", WINDOWS_ARCHIVE, WINDOWS_BIN, LINUX_ARCHIVE, LINUX_BIN, ANDROID_APK, IOS_APP)
}
