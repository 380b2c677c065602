package game

const splashArt = `
██╗     ███████╗ ██████╗ ███████╗ ███╗   ██╗██████╗ 
██║     ██╔════╝██╔═══██╗██╔════╝ ████╗  ██║██╔══██╗
██║     █████╗  ██║   ██║█████╗   ██╔██╗ ██║██║  ██║
██║     ██╔══╝  ██║   ██║██╔══╝   ██║╚██╗██║██║  ██║
███████╗███████╗╚██████╔╝███████╗ ██║ ╚████║██████╔╝
╚══════╝╚══════╝ ╚═════╝ ╚══════╝ ╚═╝  ╚═══╝╚═════╝ 
██████╗ ███████╗██████╗     ██████╗ ███████╗██████╗ ███████╗████████╗ ██████╗ ██████╗ 
██╔══██╗██╔════╝██╔══██╗    ██╔══██╗██╔════╝██╔══██╗██╔════╝╚══██╔══╝██╔═══██╗██╔══██╗
██║  ██║█████╗  ██████╔╝    ██║  ██║█████╗  ██████╔╝█████╗     ██║   ██║   ██║██████╔╝
██║  ██║██╔══╝  ██╔══██╗    ██║  ██║██╔══╝  ██╔══██╗██╔══╝     ██║   ██║   ██║██╔══██╗
██████╔╝███████╗██║  ██║    ██████╔╝███████╗██║  ██║███████╗   ██║   ╚██████╔╝██║  ██║
╚═════╝ ╚══════╝╚═╝  ╚═╝    ╚═════╝ ╚══════╝╚═╝  ╚═╝╚══════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝
`
