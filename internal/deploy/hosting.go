package deploy

import "fmt"

// HostingOptions lists the supported ways of publishing the front-end. The
// local option points at a server listening on port.
func HostingOptions(port int) []HostingOption {
	return []HostingOption{
		{
			Name: "GitHub Pages (FREE)",
			URL:  "https://pages.github.com/",
			Steps: []string{
				"Create a GitHub repository",
				"Upload chatbot_web.html and index.html",
				"Go to Settings > Pages",
				"Select 'Deploy from a branch'",
				"Your site will be at: https://username.github.io/repo-name/",
			},
		},
		{
			Name: "Netlify (FREE)",
			URL:  "https://netlify.com",
			Steps: []string{
				"Go to netlify.com",
				"Drag & drop the files or connect to Git",
				"Deploy automatically",
				"Get a public URL like: https://amazing-site-name.netlify.app",
			},
		},
		{
			Name: "Vercel (FREE)",
			URL:  "https://vercel.com",
			Steps: []string{
				"Go to vercel.com",
				"Connect your GitHub/GitLab account",
				"Import your project",
				"Deploy with one click",
				"Get instant HTTPS URL",
			},
		},
		{
			Name: "Firebase Hosting (FREE)",
			URL:  "https://firebase.google.com/docs/hosting",
			Steps: []string{
				"Install Firebase CLI: npm install -g firebase-tools",
				"Login: firebase login",
				"Initialize: firebase init hosting",
				"Deploy: firebase deploy",
				"Get your public URL",
			},
		},
		{
			Name: "Local Server (Development)",
			URL:  "Local network only",
			Steps: []string{
				"Run: go run ./cmd/api",
				"Find your IP address",
				fmt.Sprintf("Share: http://YOUR_IP:%d/chatbot_web.html", port),
				"Others can access from same network",
			},
		},
	}
}
