/*
Package main (doc.go) :
This is a CLI tool to download pretrained model resources shared on Google Drive and extract them into a local directory.

Shared files on Google Drive can be downloaded without the authorization. But when the size of file becomes large (about 40MB), Google Drive answers with an interstitial warning page instead of the file. Retrieving the file then requires to access 2 times to Google Drive. At 1st access, a cookie with a confirmation code is retrieved. At 2nd access, the file is downloaded using the cookie and code. This tool runs that flow for an archive of pretrained resources, unpacks the archive into the working directory while listing every entry, removes the archive and prints "Download finished.". This tool has the following features.

- Run without any option: the built-in resource archive is fetched and extracted into the current working directory.

- Accept a bare file ID, a shared-file URL or a download URL for other resources.

- Re-running over an already extracted directory overwrites the files without prompting.

- By using API key, gdarc can retrieve the file information of the resource and show the file size during download.

---------------------------------------------------------------

# How to Install

Use go install.

$ go install github.com/gdarc/gdarc@latest

# Usage

You can use this just after you install gdarc. You are not required to do like OAuth2 process.

$ gdarc

If you want another shared archive,

$ gdarc -u [URL of shared file on Google Drive]

---------------------------------------------------------------
*/
package main
